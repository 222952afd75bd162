// Package mode defines the editor's input modes. Keys mean different
// things depending on the active mode; the keymap layer selects its
// binding table by mode and the engine switches modes as a side effect of
// commands.
package mode

// Mode is the active input mode.
type Mode uint8

const (
	// Normal is the movement and action mode the editor starts in.
	Normal Mode = iota
	// Insert feeds printable keys into the buffer.
	Insert
	// Command line-edits an ex-style command at the bottom of the screen.
	Command
	// Search line-edits a query and searches incrementally as it changes.
	Search
)

// String returns the mode name as shown in messages and logs.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	case Search:
		return "search"
	default:
		return "unknown"
	}
}

// Prompt returns the prefix drawn before the command line in this mode,
// or "" when the mode has no line editor.
func (m Mode) Prompt() string {
	switch m {
	case Command:
		return ":"
	case Search:
		return "/"
	default:
		return ""
	}
}

// HasLineEditor reports whether keys edit the command line in this mode.
func (m Mode) HasLineEditor() bool {
	return m == Command || m == Search
}
