// Package buffer holds the caret-editable text buffers behind the editor:
// the multi-line Document and the single-line prompt Line.
package buffer

import "math"

// Column deltas large enough to reach either end of any line.
const (
	LineStart = math.MinInt / 2
	LineEnd   = math.MaxInt / 2
)

// Editable is the capability set shared by both buffer shapes. The active
// mode decides which one receives editing and motion keys.
type Editable interface {
	// Insert puts r at the caret and advances the caret by one column
	Insert(r rune)
	// Backspace removes the character before the caret
	Backspace()
	// Delete removes the character under the caret
	Delete()
	// MoveCaret moves the caret by the given deltas, clamped to the content
	MoveCaret(rowDelta, colDelta int)
}

// Position is a caret or viewport coordinate, 0-indexed
type Position struct {
	Row int
	Col int
}

// clampAdd adds delta to pos without overflowing and clamps the result into [lo, hi]
func clampAdd(pos, delta, lo, hi int) int {
	var n int
	switch {
	case delta > 0 && pos > math.MaxInt-delta:
		n = math.MaxInt
	case delta < 0 && pos < math.MinInt-delta:
		n = math.MinInt
	default:
		n = pos + delta
	}
	return max(lo, min(n, hi))
}
