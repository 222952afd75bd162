package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "G", "/", "`"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Up", "End"
//   - With modifiers: "C-h", "A-s", "A-Left", "C-A-x"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A lone "-" is a key, not a modifier separator.
	parts := strings.Split(spec, "-")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = []string{spec}
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods |= ModCtrl
		case "a":
			mods |= ModAlt
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKey(parts[len(parts)-1], mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	switch strings.ToLower(name) {
	case "cr", "return", "enter":
		return Event{Key: KeyEnter, Mod: mods}, nil
	case "esc", "escape":
		return Event{Key: KeyEscape, Mod: mods}, nil
	case "tab":
		return Event{Key: KeyTab, Mod: mods}, nil
	case "bs", "backspace":
		return Event{Key: KeyBackspace, Mod: mods}, nil
	case "del", "delete":
		return Event{Key: KeyDelete, Mod: mods}, nil
	case "up":
		return Event{Key: KeyUp, Mod: mods}, nil
	case "down":
		return Event{Key: KeyDown, Mod: mods}, nil
	case "left":
		return Event{Key: KeyLeft, Mod: mods}, nil
	case "right":
		return Event{Key: KeyRight, Mod: mods}, nil
	case "home":
		return Event{Key: KeyHome, Mod: mods}, nil
	case "end":
		return Event{Key: KeyEnd, Mod: mods}, nil
	case "pageup", "pgup":
		return Event{Key: KeyPageUp, Mod: mods}, nil
	case "pagedown", "pgdn":
		return Event{Key: KeyPageDown, Mod: mods}, nil
	case "space":
		return Event{Key: KeyRune, Rune: ' ', Mod: mods}, nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	return Event{Key: KeyRune, Rune: runes[0], Mod: mods}, nil
}

// ParseSequence parses a space-separated key sequence such as "g g".
func ParseSequence(spec string) ([]Event, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, ErrEmptySpec
	}
	seq := make([]Event, 0, len(fields))
	for _, f := range fields {
		ev, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, ev)
	}
	return seq, nil
}

// SequenceString renders a sequence the way Parse reads it, one event
// name per word.
func SequenceString(seq []Event) string {
	parts := make([]string, len(seq))
	for i, ev := range seq {
		parts[i] = ev.String()
	}
	return strings.Join(parts, " ")
}
