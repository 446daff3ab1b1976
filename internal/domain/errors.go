// Package domain contains the error types shared by the femto editor.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors
var (
	ErrEmptyPath           = errors.New("no file name given")
	ErrUnsupportedTerminal = errors.New("unsupported terminal")
)

// IOError represents a failed open or save of a document
type IOError struct {
	Op   string // Operation: "open" or "save"
	Path string // Path the operation was attempted on
	Err  error  // Underlying error
}

func (e *IOError) Error() string {
	cause := e.Err
	// os errors already carry the path; keep only the reason
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	if cause == nil {
		cause = errors.New("failed")
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// TerminalError represents a terminal that cannot host the editor
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrUnsupportedTerminal, e.Op, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrUnsupportedTerminal, e.Op)
}

// Is reports every TerminalError as ErrUnsupportedTerminal
func (e *TerminalError) Is(target error) bool {
	return target == ErrUnsupportedTerminal
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
