package buffer

import "slices"

// Line is a single line of input with a caret column. It backs the
// command prompt and has no notion of rows or scrolling.
type Line struct {
	text []rune
	col  int
}

// NewLine creates a Line holding text with the caret placed after the last character
func NewLine(text string) *Line {
	runes := []rune(text)
	return &Line{text: runes, col: len(runes)}
}

// String returns the line's text
func (l *Line) String() string {
	return string(l.text)
}

// Len returns the number of characters in the line
func (l *Line) Len() int {
	return len(l.text)
}

// Col returns the caret column
func (l *Line) Col() int {
	return l.col
}

// Insert adds r at the caret. Newlines are ignored.
func (l *Line) Insert(r rune) {
	if r == '\n' {
		return
	}
	l.text = slices.Insert(l.text, l.col, r)
	l.MoveCaret(0, 1)
}

// Backspace removes the character before the caret
func (l *Line) Backspace() {
	if l.col == 0 {
		return
	}
	l.text = slices.Delete(l.text, l.col-1, l.col)
	l.MoveCaret(0, -1)
}

// Delete removes the character under the caret
func (l *Line) Delete() {
	if l.col >= len(l.text) {
		return
	}
	l.text = slices.Delete(l.text, l.col, l.col+1)
}

// MoveCaret moves the caret horizontally; the row delta is ignored
func (l *Line) MoveCaret(_, colDelta int) {
	l.col = clampAdd(l.col, colDelta, 0, len(l.text))
}
