// Package types contains shared types used across the application.
package types

// CommandKind identifies what a command prompt commits to
type CommandKind int

const (
	CommandOpen CommandKind = iota
	CommandSave
)

// String returns the string representation of the command kind
func (k CommandKind) String() string {
	switch k {
	case CommandOpen:
		return "OPEN"
	case CommandSave:
		return "SAVE"
	default:
		return "UNKNOWN"
	}
}

// Label returns the prompt shown in front of the command text
func (k CommandKind) Label() string {
	switch k {
	case CommandOpen:
		return "Open file at: "
	case CommandSave:
		return "Save file at: "
	default:
		return ""
	}
}
