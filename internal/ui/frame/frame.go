// Package frame turns editor state into what one screen refresh shows
package frame

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/femto/internal/services/editor"
	"github.com/riordanpawley/femto/internal/ui/statusbar"
	"github.com/riordanpawley/femto/internal/ui/styles"
)

// Row is one content row of the screen
type Row struct {
	Text string
	// Filler marks a row past the end of the document
	Filler bool
}

// Point is a 1-based screen position
type Point struct {
	X, Y int
}

// Frame is a composed screen: content rows, the status bar and where the
// caret goes
type Frame struct {
	Rows   []Row
	Bar    statusbar.Bar
	Cursor Point
	// Prompt is true when the caret sits in the status bar
	Prompt bool

	Width  int
	Height int
}

// Compose builds the frame for a width x height screen. The last row is the
// status bar; rows past the end of the document show filler.
func Compose(ed *editor.Service, width, height int, filler string) Frame {
	width = max(width, 0)
	height = max(height, 0)

	doc := ed.Document()
	off := doc.Offset()
	caret := doc.Caret()

	content := max(height-1, 0)
	rows := make([]Row, 0, content)
	for i := 0; i < content; i++ {
		idx := off.Row + i
		if idx >= doc.LineCount() {
			rows = append(rows, Row{Text: filler, Filler: true})
			continue
		}
		rows = append(rows, Row{Text: window(doc.Line(idx), off.Col, width)})
	}

	status := ed.StatusLine()
	bar := statusbar.Layout(status, caret, width)

	f := Frame{
		Rows:   rows,
		Bar:    bar,
		Prompt: status.Prompt,
		Width:  width,
		Height: height,
	}
	if status.Prompt {
		f.Cursor = Point{X: bar.CursorX, Y: height}
	} else {
		f.Cursor = Point{X: caret.Col - off.Col + 1, Y: caret.Row - off.Row + 1}
	}
	return f
}

// window returns the runes of line in [from, from+width)
func window(line string, from, width int) string {
	runes := []rune(line)
	if from >= len(runes) {
		return ""
	}
	return string(runes[from:min(from+width, len(runes))])
}

// String returns the frame as plain text, one line per screen row
func (f Frame) String() string {
	lines := make([]string, 0, len(f.Rows)+1)
	for _, row := range f.Rows {
		lines = append(lines, styles.Cells(row.Text))
	}
	if f.Height > 0 {
		lines = append(lines, f.Bar.String())
	}
	return strings.Join(lines, "\n")
}

// Render draws the frame. The document caret is drawn in-band with cur;
// the prompt caret is drawn by the status bar.
func (f Frame) Render(st *styles.Styles, cur cursor.Model) string {
	lines := make([]string, 0, len(f.Rows)+1)
	for i, row := range f.Rows {
		style := st.Text
		if row.Filler {
			style = st.Filler
		}
		text := styles.Cells(row.Text)
		if !f.Prompt && f.Cursor.Y == i+1 {
			lines = append(lines, drawCaret(text, f.Cursor.X-1, style, &cur))
			continue
		}
		lines = append(lines, style.Render(text))
	}
	if f.Height > 0 {
		lines = append(lines, f.Bar.Render(st))
	}
	return strings.Join(lines, "\n")
}

// drawCaret draws text with the character at x shown as the caret.
// Past the end of the text the caret is a blank cell.
func drawCaret(text string, x int, style lipgloss.Style, cur *cursor.Model) string {
	runes := []rune(text)
	if x < 0 {
		return style.Render(text)
	}

	var sb strings.Builder
	before := runes[:min(x, len(runes))]
	if len(before) > 0 {
		sb.WriteString(style.Render(string(before)))
	}
	if x > len(runes) {
		sb.WriteString(strings.Repeat(" ", x-len(runes)))
	}

	if x < len(runes) {
		cur.SetChar(string(runes[x]))
		sb.WriteString(cur.View())
		if x+1 < len(runes) {
			sb.WriteString(style.Render(string(runes[x+1:])))
		}
	} else {
		cur.SetChar(" ")
		sb.WriteString(cur.View())
	}
	return sb.String()
}

// NewCursor returns the caret model used by Render: a steady block
func NewCursor() cursor.Model {
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	return c
}
