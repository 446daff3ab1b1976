package styles

import (
	"strings"
	"unicode"
)

// ControlPlaceholder stands in for control characters on screen
const ControlPlaceholder = '?'

// Cells maps text to exactly one terminal cell per rune: a tab becomes a
// space and any other control character becomes ControlPlaceholder.
func Cells(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return ControlPlaceholder
		default:
			return r
		}
	}, text)
}
