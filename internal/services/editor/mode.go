package editor

import (
	"github.com/riordanpawley/femto/internal/buffer"
	"github.com/riordanpawley/femto/internal/types"
)

// Mode is the editor's top-level state: Normal or CommandPrompt.
// The interface is sealed, so no other mode can exist.
type Mode interface {
	String() string
	isMode()
}

// Normal is plain document editing
type Normal struct{}

func (Normal) String() string { return "NORMAL" }
func (Normal) isMode()        {}

// CommandPrompt collects a path for an open or save command. It owns its
// input line for as long as the prompt is open.
type CommandPrompt struct {
	Kind  types.CommandKind
	Input *buffer.Line
}

func (p CommandPrompt) String() string { return "PROMPT " + p.Kind.String() }
func (CommandPrompt) isMode()          {}
