package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/paqtool/paq/internal/command"
	"github.com/paqtool/paq/internal/tui/layout"
)

// Mode identifies the top-level session mode.
type Mode int

const (
	// ModeStandard is the browse mode: navigation and single-key commands.
	ModeStandard Mode = iota
	// ModeInput collects an argument for a pending operation.
	ModeInput
	// ModeHelp shows the key reference overlay until any key is pressed.
	ModeHelp
)

// Pane identifies which pane currently has focus in standard mode.
type Pane int

const (
	PaneList Pane = iota
	PaneQueue
)

// MessageType categorizes the status line message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageError
)

// InputState holds state for the command input line.
type InputState struct {
	Field textinput.Model // argument being edited
	Op    command.Op      // operation the argument is for
}

// NewInputState creates a new InputState with an initialized field.
func NewInputState(cfg layout.LayoutConfig) InputState {
	field := textinput.New()
	field.CharLimit = cfg.Input.CharLimit
	field.Width = cfg.Input.Width
	return InputState{
		Field: field,
		Op:    command.OpNone,
	}
}

// Begin prepares the input line for a new operation. The seed is
// pre-filled text the user continues typing after (may be empty).
func (s *InputState) Begin(op command.Op, seed string) {
	s.Op = op
	s.Field.SetValue(seed)
	s.Field.CursorEnd()
	s.Field.Focus()
}

// End clears the input line and returns focus to standard mode.
func (s *InputState) End() {
	s.Op = command.OpNone
	s.Field.Reset()
	s.Field.Blur()
}
