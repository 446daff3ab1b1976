// Package statusbar lays out and draws the bottom row of the screen
package statusbar

import (
	"fmt"
	"strings"

	"github.com/riordanpawley/femto/internal/buffer"
	"github.com/riordanpawley/femto/internal/types"
	"github.com/riordanpawley/femto/internal/ui/styles"
)

// Bar is a laid-out status bar: label, a window onto the status text,
// padding, and the caret coordinates on the right
type Bar struct {
	Label   string
	Text    string
	Padding int
	Right   string

	// Trim is how many characters of the status text scrolled off the left
	Trim int
	// CursorX is the 1-based screen column of the prompt caret
	CursorX int

	Level  types.MessageLevel
	Prompt bool
	Width  int
}

// Layout fits status into a bar of the given width. caret is the document
// caret, shown 1-based on the right. Status text that does not fit is
// scrolled so the prompt caret stays visible. On a narrow terminal the label
// is cut first and then the caret coordinates are left out.
func Layout(status types.Status, caret buffer.Position, width int) Bar {
	width = max(width, 0)
	right := []rune(fmt.Sprintf(" row: %d, col: %d", caret.Row+1, caret.Col+1))
	label := []rune(status.Label)
	text := []rune(status.Text)

	// text keeps at least one cell; the label shrinks first, then the
	// coordinates are dropped whole
	minText := 0
	if status.Prompt || len(text) > 0 {
		minText = min(1, width)
	}
	if width-minText < len(right) {
		right = nil
	}
	label = label[:min(len(label), width-minText-len(right))]

	avail := width - len(right) - len(label)

	trim, padding := 0, 0
	if len(text) > avail {
		trim = min(status.Col, len(text)-avail)
		text = text[trim : trim+avail]
	} else {
		padding = avail - len(text)
	}

	cursorX := len(label) + status.Col + 1 - trim
	if width > 0 {
		cursorX = min(cursorX, width)
	}

	return Bar{
		Label:   string(label),
		Text:    styles.Cells(string(text)),
		Padding: padding,
		Right:   string(right),
		Trim:    trim,
		CursorX: cursorX,
		Level:   status.Level,
		Prompt:  status.Prompt,
		Width:   width,
	}
}

// String returns the bar as plain text, cut to the bar width
func (b Bar) String() string {
	line := []rune(b.Label + b.Text + strings.Repeat(" ", b.Padding) + b.Right)
	if b.Width >= 0 && len(line) > b.Width {
		line = line[:b.Width]
	}
	return string(line)
}

// Render draws the bar with styles. In a prompt the caret cell is drawn
// un-inverted so it shows up inside the inverse bar.
func (b Bar) Render(s *styles.Styles) string {
	full := []rune(b.String())
	label := min(len([]rune(b.Label)), len(full))
	rest := full[label:]

	var sb strings.Builder
	if label > 0 {
		sb.WriteString(s.StatusLabel.Render(string(full[:label])))
	}

	if b.Prompt {
		at := b.CursorX - 1 - label
		if at < 0 || at >= len(rest) {
			sb.WriteString(s.StatusBar.Render(string(rest)))
			return sb.String()
		}
		if at > 0 {
			sb.WriteString(s.StatusBar.Render(string(rest[:at])))
		}
		sb.WriteString(s.StatusCursor.Render(string(rest[at])))
		if at+1 < len(rest) {
			sb.WriteString(s.StatusBar.Render(string(rest[at+1:])))
		}
		return sb.String()
	}

	text := min(len([]rune(b.Text)), len(rest))
	if text > 0 {
		style := s.StatusBar
		if b.Label == "" {
			style = s.Message(b.Level)
		}
		sb.WriteString(style.Render(string(rest[:text])))
	}
	if text < len(rest) {
		sb.WriteString(s.StatusBar.Render(string(rest[text:])))
	}
	return sb.String()
}
