// Package tui provides the interactive schedule editor for schedo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal        Mode = iota // Browsing or moving tasks
	ModeInputName                 // Name prompt (for new task)
	ModeInputDuration             // Duration prompt (for new task)
	ModeEditName                  // Name prompt (editing the task under the cursor)
	ModeEditDuration              // Duration prompt (editing the task under the cursor)
	ModeHelp                      // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputName:
		return "input_name"
	case ModeInputDuration:
		return "input_duration"
	case ModeEditName:
		return "edit_name"
	case ModeEditDuration:
		return "edit_duration"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputName, ModeInputDuration, ModeEditName, ModeEditDuration:
		return true
	case ModeNormal, ModeHelp:
		return false
	}
	return false
}

// IsEditMode returns true if the prompt edits an existing task.
func (m Mode) IsEditMode() bool {
	return m == ModeEditName || m == ModeEditDuration
}
