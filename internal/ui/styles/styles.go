// Package styles holds the lipgloss styles used to draw the editor
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/femto/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Document area
	Text   lipgloss.Style
	Filler lipgloss.Style

	// Status bar. The bar is drawn in inverse video; the caret inside a
	// prompt is the one cell drawn the normal way round.
	StatusBar    lipgloss.Style
	StatusLabel  lipgloss.Style
	StatusInfo   lipgloss.Style
	StatusError  lipgloss.Style
	StatusCursor lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato accents
func New() *Styles {
	return &Styles{
		Text: lipgloss.NewStyle(),

		Filler: lipgloss.NewStyle().
			Foreground(Overlay0),

		StatusBar: lipgloss.NewStyle().
			Reverse(true),

		StatusLabel: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),

		StatusInfo: lipgloss.NewStyle().
			Reverse(true).
			Foreground(Green),

		StatusError: lipgloss.NewStyle().
			Reverse(true).
			Bold(true).
			Foreground(Red),

		StatusCursor: lipgloss.NewStyle(),
	}
}

// Message returns the style for status text of the given level
func (s *Styles) Message(level types.MessageLevel) lipgloss.Style {
	switch level {
	case types.MessageError:
		return s.StatusError
	default:
		return s.StatusInfo
	}
}
