package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ked/internal/input/key"
)

// convertKey translates a tcell key event into the keymap's event type.
// It reports false for keys the editor has no concept of, which are
// dropped before dispatch.
//
// tcell aliases the C0 control bytes with named keys (Enter is Ctrl-M,
// Tab is Ctrl-I, byte 8 is both Backspace and Ctrl-H), so the named
// cases below decide which reading wins: Enter, Tab, and Escape stay
// named keys, while byte 8 becomes C-h because the command line binds
// it and modern terminals send 127 for the Backspace key.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mod := key.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= key.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= key.ModAlt
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: ev.Rune(), Mod: mod}, true
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Mod: mod &^ key.ModCtrl}, true
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab, Mod: mod &^ key.ModCtrl}, true
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape, Mod: mod &^ key.ModCtrl}, true
	case tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Mod: mod &^ key.ModCtrl}, true
	case tcell.KeyCtrlH:
		return key.Event{Key: key.KeyRune, Rune: 'h', Mod: mod | key.ModCtrl}, true
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Mod: mod}, true
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp, Mod: mod}, true
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown, Mod: mod}, true
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Mod: mod}, true
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Mod: mod}, true
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Mod: mod}, true
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Mod: mod}, true
	case tcell.KeyPgUp:
		return key.Event{Key: key.KeyPageUp, Mod: mod}, true
	case tcell.KeyPgDn:
		return key.Event{Key: key.KeyPageDown, Mod: mod}, true
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.Event{Key: key.KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Mod: mod | key.ModCtrl}, true
		}
		return key.Event{}, false
	}
}
