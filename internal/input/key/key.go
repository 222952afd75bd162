// Package key defines the terminal-independent key event consumed by the
// keymap layer. The terminal backend translates its own event type into
// these before dispatch, so bindings never reference a concrete terminal
// library.
package key

import "fmt"

// Key identifies a key. Character keys use KeyRune with the Event's Rune
// field set; control-modified letters also arrive as KeyRune with ModCtrl.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
}

// IsSpecial reports whether the key is a non-character key.
func (k Key) IsSpecial() bool {
	return k != KeyRune && k != KeyNone
}

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// Has reports whether m contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// NewRune creates an event for a plain character key.
func NewRune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecial creates an event for a non-character key.
func NewSpecial(k Key) Event {
	return Event{Key: k}
}

// IsRune reports whether the event is an unmodified character key.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Mod == ModNone
}

// String returns the event in a form fit for status messages, such as
// "a", "C-h", "A-s", or "Escape".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	switch {
	case e.Mod.Has(ModCtrl) && e.Mod.Has(ModAlt):
		return "C-A-" + name
	case e.Mod.Has(ModCtrl):
		return "C-" + name
	case e.Mod.Has(ModAlt):
		return "A-" + name
	}
	return name
}
