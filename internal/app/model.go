// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/femto/internal/buffer"
	"github.com/riordanpawley/femto/internal/config"
	"github.com/riordanpawley/femto/internal/keys"
	"github.com/riordanpawley/femto/internal/services/editor"
	"github.com/riordanpawley/femto/internal/ui/frame"
	"github.com/riordanpawley/femto/internal/ui/styles"
)

// Model is the bubbletea model. Each key message becomes exactly one editor
// operation; View draws the resulting frame.
type Model struct {
	editor *editor.Service
	keys   keys.KeyMap

	// Terminal size
	width  int
	height int

	// Rendering
	styles *styles.Styles
	cursor cursor.Model
	filler string

	logger *slog.Logger
}

// New creates the application model around an editor
func New(ed *editor.Service, cfg *config.Config, logger *slog.Logger) Model {
	return Model{
		editor: ed,
		keys:   keys.DefaultKeyMap(),
		styles: styles.New(),
		cursor: frame.NewCursor(),
		filler: cfg.Filler,
		logger: logger,
	}
}

// Editor returns the editor the model drives
func (m Model) Editor() *editor.Service {
	return m.editor
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.Resize(msg.Width, msg.Height)
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		// the message was on screen for the previous frame
		m.editor.ExpireMessage()
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the current frame
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return frame.Compose(m.editor, m.width, m.height, m.filler).Render(m.styles, m.cursor)
}

// handleKey maps one key to one editor operation
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.editor.IsNormal() {
			m.logger.Info("quitting", "path", m.editor.Path())
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Open):
		m.editor.StartOpen()
	case key.Matches(msg, m.keys.Save):
		m.editor.StartSave()
	case key.Matches(msg, m.keys.Cancel):
		m.editor.Cancel()
	case key.Matches(msg, m.keys.Enter):
		m.editor.DispatchRune('\n')
	case key.Matches(msg, m.keys.Backspace):
		m.editor.Active().Backspace()
	case key.Matches(msg, m.keys.Delete):
		// forward delete only edits the document
		if m.editor.IsNormal() {
			m.editor.Document().Delete()
		}
	case key.Matches(msg, m.keys.Up):
		m.editor.Active().MoveCaret(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.editor.Active().MoveCaret(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.editor.Active().MoveCaret(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.editor.Active().MoveCaret(0, 1)
	case key.Matches(msg, m.keys.Home):
		m.editor.Active().MoveCaret(0, buffer.LineStart)
	case key.Matches(msg, m.keys.End):
		m.editor.Active().MoveCaret(0, buffer.LineEnd)
	default:
		m.typeRunes(msg)
	}
	return m, nil
}

// typeRunes sends the characters a key carries to the editor. Pasted
// carriage returns become newlines; a CRLF pair counts once. A paste stops
// at a newline that commits a prompt.
func (m Model) typeRunes(msg tea.KeyMsg) {
	if msg.Alt {
		return
	}

	switch msg.Type {
	case tea.KeyTab:
		m.editor.DispatchRune('\t')
		return
	case tea.KeySpace:
		if len(msg.Runes) == 0 {
			m.editor.DispatchRune(' ')
			return
		}
	case tea.KeyRunes:
	default:
		m.logger.Debug("unbound key", "key", msg.String())
		return
	}

	normal := m.editor.IsNormal()
	runes := msg.Runes
	for i, r := range runes {
		if m.editor.IsNormal() != normal {
			m.logger.Debug("paste cut short by mode change", "dropped", len(runes)-i)
			return
		}
		if r == '\r' {
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			r = '\n'
		}
		m.editor.DispatchRune(r)
	}
}
