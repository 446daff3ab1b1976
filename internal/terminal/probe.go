// Package terminal checks that femto is attached to a usable terminal
// before the TUI takes over.
package terminal

import (
	"errors"

	"golang.org/x/term"

	"github.com/riordanpawley/femto/internal/domain"
)

var errNotATerminal = errors.New("not a terminal")

// File is anything backed by a file descriptor, such as *os.File
type File interface {
	Fd() uintptr
}

// Size is a terminal size in cells
type Size struct {
	Width  int
	Height int
}

// Probe checks that in and out are terminals and returns the size of out
func Probe(in, out File) (Size, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return Size{}, &domain.TerminalError{Op: "input", Err: errNotATerminal}
	}
	if !term.IsTerminal(int(out.Fd())) {
		return Size{}, &domain.TerminalError{Op: "output", Err: errNotATerminal}
	}

	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return Size{}, &domain.TerminalError{Op: "window size", Err: err}
	}
	return Size{Width: width, Height: height}, nil
}
