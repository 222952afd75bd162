package keymap

import (
	"fmt"

	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input/key"
	"github.com/dshills/ked/internal/input/mode"
)

// Keymap resolves key events to commands using the binding table of
// the active mode. It owns the pending state of multi-key sequences,
// so one Keymap serves one input stream.
type Keymap struct {
	normal     *Table
	insert     *Table
	lineEditor *Table
	pending    []key.Event
}

// New returns a Keymap loaded with the default binding tables.
func New() *Keymap {
	return &Keymap{
		normal:     mustTable(DefaultNormalBindings()),
		insert:     mustTable(DefaultInsertBindings()),
		lineEditor: mustTable(DefaultLineEditorBindings()),
	}
}

// Pending returns the keys collected so far toward a multi-key
// binding, or "" when no sequence is in flight.
func (k *Keymap) Pending() string {
	return key.SequenceString(k.pending)
}

// Translate resolves one key event under the given mode. It returns
// the command to apply, or a status message for keys the mode rejects.
// Both are zero when the event is absorbed, either silently ignored or
// held as a sequence prefix.
func (k *Keymap) Translate(m mode.Mode, ev key.Event) (engine.Command, string) {
	if m != mode.Normal {
		k.pending = k.pending[:0]
	}

	switch m {
	case mode.Insert:
		return k.translateInsert(ev)
	case mode.Command, mode.Search:
		return k.translateLineEditor(ev)
	default:
		return k.translateNormal(ev)
	}
}

func (k *Keymap) translateNormal(ev key.Event) (engine.Command, string) {
	seq := append(k.pending, ev)
	cmd, state := k.normal.lookup(seq)
	switch state {
	case lookupExact:
		k.pending = k.pending[:0]
		return cmd, ""
	case lookupPrefix:
		k.pending = seq
		return nil, ""
	}

	hadPending := len(k.pending) > 0
	k.pending = k.pending[:0]
	if hadPending && ev.Key == key.KeyEscape {
		// Escape quietly abandons a half-typed sequence.
		return nil, ""
	}
	if !hadPending && ignoredInNormal(ev) {
		return nil, ""
	}
	return nil, fmt.Sprintf("invalid key '%s' in normal mode", key.SequenceString(seq))
}

func (k *Keymap) translateInsert(ev key.Event) (engine.Command, string) {
	if cmd, state := k.insert.lookup([]key.Event{ev}); state == lookupExact {
		return cmd, ""
	}
	if ev.IsRune() && ev.Rune >= 32 && ev.Rune <= 126 {
		return engine.InsertChar{Ch: byte(ev.Rune)}, ""
	}
	return nil, fmt.Sprintf("non-printable key '%s' in insert mode", ev)
}

func (k *Keymap) translateLineEditor(ev key.Event) (engine.Command, string) {
	if cmd, state := k.lineEditor.lookup([]key.Event{ev}); state == lookupExact {
		return cmd, ""
	}
	if ev.IsRune() && ev.Rune >= 32 && ev.Rune <= 126 {
		return engine.CmdlineInsert{Ch: byte(ev.Rune)}, ""
	}
	return nil, ""
}

// ignoredInNormal lists the keys normal mode swallows without comment.
func ignoredInNormal(ev key.Event) bool {
	switch ev.Key {
	case key.KeyEscape, key.KeyEnter, key.KeyBackspace:
		return ev.Mod == key.ModNone
	}
	return false
}
