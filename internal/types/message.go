package types

// Message is a one-shot status message shown in place of the idle label
type Message struct {
	Level MessageLevel
	Text  string
}

// MessageLevel indicates the severity of a message
type MessageLevel int

const (
	MessageInfo MessageLevel = iota
	MessageError
)

// Status is what the status bar shows on its left-hand side.
// Col is the caret column inside Text and only matters while a prompt is open.
type Status struct {
	Label  string
	Text   string
	Col    int
	Level  MessageLevel
	Prompt bool
}
