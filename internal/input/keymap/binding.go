package keymap

import (
	"fmt"

	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input/key"
)

// Binding maps one key sequence to a command.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Formats: "j", "g g", "C-h", "A-Left"
	Keys string

	// Command is the engine command to apply.
	Command engine.Command

	// Description documents the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// Table is a set of parsed bindings, laid out as a trie over key
// events so sequence lookup can tell a complete match from a prefix.
type Table struct {
	root *node
}

type node struct {
	cmd      engine.Command
	children map[key.Event]*node
}

// NewTable parses bindings into a lookup table. A sequence bound twice,
// or bound both as a command and as a prefix of a longer binding, is an
// error.
func NewTable(bindings []Binding) (*Table, error) {
	t := &Table{root: &node{}}
	for _, b := range bindings {
		if b.Command == nil {
			return nil, fmt.Errorf("binding %q: no command", b.Keys)
		}
		seq, err := key.ParseSequence(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		n := t.root
		for _, ev := range seq {
			if n.cmd != nil {
				return nil, fmt.Errorf("binding %q: shadowed by a shorter binding", b.Keys)
			}
			if n.children == nil {
				n.children = make(map[key.Event]*node)
			}
			child := n.children[ev]
			if child == nil {
				child = &node{}
				n.children[ev] = child
			}
			n = child
		}
		if n.cmd != nil {
			return nil, fmt.Errorf("binding %q: bound twice", b.Keys)
		}
		if len(n.children) != 0 {
			return nil, fmt.Errorf("binding %q: prefix of a longer binding", b.Keys)
		}
		n.cmd = b.Command
	}
	return t, nil
}

func mustTable(bindings []Binding) *Table {
	t, err := NewTable(bindings)
	if err != nil {
		panic("keymap: " + err.Error())
	}
	return t
}

type lookupState uint8

const (
	lookupNone lookupState = iota
	lookupPrefix
	lookupExact
)

// lookup walks the trie along seq. It reports an exact hit with its
// command, a live prefix that needs more keys, or no match.
func (t *Table) lookup(seq []key.Event) (engine.Command, lookupState) {
	n := t.root
	for _, ev := range seq {
		next := n.children[ev]
		if next == nil {
			return nil, lookupNone
		}
		n = next
	}
	if n.cmd != nil {
		return n.cmd, lookupExact
	}
	return nil, lookupPrefix
}
