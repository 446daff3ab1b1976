package buffer

import "slices"

// Terminal size assumed until the first resize arrives
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Store reads and writes documents as lines of text
type Store interface {
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

// Document is the full file being edited: its lines, the caret and the
// viewport that keeps the caret on screen.
//
// Invariants: there is always at least one line, the caret is inside the
// content (its column may equal the line length) and the caret is inside the
// visible window starting at the viewport offset.
type Document struct {
	lines [][]rune

	row int
	col int

	rowOffset int
	colOffset int

	visibleRows int
	visibleCols int
}

// NewDocument creates an empty document with a single empty line
func NewDocument() *Document {
	d := &Document{lines: [][]rune{{}}}
	d.Resize(DefaultWidth, DefaultHeight)
	return d
}

// NewDocumentFromLines creates a document holding lines with the caret at the origin
func NewDocumentFromLines(lines []string) *Document {
	d := NewDocument()
	d.Replace(lines)
	return d
}

// Load replaces the document with the contents of path
func (d *Document) Load(store Store, path string) error {
	lines, err := store.ReadLines(path)
	if err != nil {
		return err
	}
	d.Replace(lines)
	return nil
}

// Save writes every line of the document to path
func (d *Document) Save(store Store, path string) error {
	return store.WriteLines(path, d.Lines())
}

// Replace swaps in new content and resets caret and viewport to the origin
func (d *Document) Replace(lines []string) {
	d.lines = make([][]rune, 0, max(len(lines), 1))
	for _, line := range lines {
		d.lines = append(d.lines, []rune(line))
	}
	if len(d.lines) == 0 {
		d.lines = append(d.lines, []rune{})
	}
	d.row, d.col = 0, 0
	d.rowOffset, d.colOffset = 0, 0
}

// Resize sets the terminal size the viewport has to fit in. One row is
// reserved for the status bar.
func (d *Document) Resize(width, height int) {
	d.visibleCols = max(width, 1)
	d.visibleRows = max(height-1, 1)
	d.scroll()
}

// Lines returns a copy of the document content
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = string(line)
	}
	return out
}

// Line returns the text of line i, or "" when i is out of range
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return string(d.lines[i])
}

// LineCount returns the number of lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Caret returns the caret position
func (d *Document) Caret() Position {
	return Position{Row: d.row, Col: d.col}
}

// Offset returns the top-left cell of the viewport
func (d *Document) Offset() Position {
	return Position{Row: d.rowOffset, Col: d.colOffset}
}

// Visible returns how many rows and columns of content fit on screen
func (d *Document) Visible() (rows, cols int) {
	return d.visibleRows, d.visibleCols
}

// Insert adds r at the caret. A newline splits the line at the caret.
func (d *Document) Insert(r rune) {
	line := d.lines[d.row]

	if r == '\n' {
		tail := slices.Clone(line[d.col:])
		d.lines[d.row] = line[:d.col]
		d.lines = slices.Insert(d.lines, d.row+1, tail)
		d.row++
		d.col = 0
		d.scroll()
		return
	}

	d.lines[d.row] = slices.Insert(line, d.col, r)
	d.MoveCaret(0, 1)
}

// Backspace removes the character before the caret. At the start of a line
// the line is merged onto the end of the previous one.
func (d *Document) Backspace() {
	switch {
	case d.col > 0:
		d.lines[d.row] = slices.Delete(d.lines[d.row], d.col-1, d.col)
		d.MoveCaret(0, -1)
	case d.row > 0:
		merged := d.lines[d.row]
		d.lines = slices.Delete(d.lines, d.row, d.row+1)
		d.row--
		d.col = len(d.lines[d.row])
		d.lines[d.row] = append(d.lines[d.row], merged...)
		d.scroll()
	}
}

// Delete removes the character under the caret. At the end of a line the
// next line is merged into this one. The caret does not move.
func (d *Document) Delete() {
	line := d.lines[d.row]
	switch {
	case d.col < len(line):
		d.lines[d.row] = slices.Delete(line, d.col, d.col+1)
	case d.row < len(d.lines)-1:
		next := d.lines[d.row+1]
		d.lines = slices.Delete(d.lines, d.row+1, d.row+2)
		d.lines[d.row] = append(line, next...)
	}
}

// MoveCaret moves the caret by the given deltas. The row is clamped first so
// the column is clamped against the line the caret lands on.
func (d *Document) MoveCaret(rowDelta, colDelta int) {
	d.row = clampAdd(d.row, rowDelta, 0, len(d.lines)-1)
	d.col = clampAdd(d.col, colDelta, 0, len(d.lines[d.row]))
	d.scroll()
}

// scroll moves the viewport the least amount needed to show the caret
func (d *Document) scroll() {
	if d.row < d.rowOffset {
		d.rowOffset = d.row
	} else if d.row > d.rowOffset+d.visibleRows-1 {
		d.rowOffset = d.row - (d.visibleRows - 1)
	}

	if d.col < d.colOffset {
		d.colOffset = d.col
	} else if d.col > d.colOffset+d.visibleCols-1 {
		d.colOffset = d.col - (d.visibleCols - 1)
	}
}
