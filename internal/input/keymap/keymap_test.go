package keymap

import (
	"strings"
	"testing"

	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input/key"
	"github.com/dshills/ked/internal/input/mode"
)

func translate(t *testing.T, k *Keymap, m mode.Mode, ev key.Event) (engine.Command, string) {
	t.Helper()
	return k.Translate(m, ev)
}

func wantCommand(t *testing.T, k *Keymap, m mode.Mode, ev key.Event, want engine.Command) {
	t.Helper()
	cmd, status := translate(t, k, m, ev)
	if cmd != want {
		t.Errorf("Translate(%v, %s) = %#v, want %#v", m, ev, cmd, want)
	}
	if status != "" {
		t.Errorf("Translate(%v, %s) status = %q, want empty", m, ev, status)
	}
}

func TestDefaultTablesParse(t *testing.T) {
	for name, bindings := range map[string][]Binding{
		"normal":      DefaultNormalBindings(),
		"insert":      DefaultInsertBindings(),
		"line editor": DefaultLineEditorBindings(),
	} {
		if _, err := NewTable(bindings); err != nil {
			t.Errorf("%s table: %v", name, err)
		}
	}
}

func TestNormalModeBindings(t *testing.T) {
	k := New()
	tests := []struct {
		ev   key.Event
		want engine.Command
	}{
		{key.NewRune('h'), engine.MoveLeft{}},
		{key.NewRune('j'), engine.MoveDown{}},
		{key.NewRune('k'), engine.MoveUp{}},
		{key.NewRune('l'), engine.MoveRight{}},
		{key.NewSpecial(key.KeyDown), engine.MoveDown{}},
		{key.NewRune('a'), engine.MoveLineBegin{}},
		{key.NewRune(';'), engine.MoveLineEnd{}},
		{key.NewRune('o'), engine.MoveWordForward{}},
		{key.NewRune('n'), engine.MoveWordBackward{}},
		{key.NewRune('m'), engine.MoveNextPara{}},
		{key.NewRune('u'), engine.MovePrevPara{}},
		{key.NewRune('G'), engine.MoveLastRow{}},
		{key.NewRune('U'), engine.MovePageUp{}},
		{key.NewRune('M'), engine.MovePageDown{}},
		{key.NewRune('i'), engine.EnterInsertMode{}},
		{key.NewRune(','), engine.OpenLineBelow{}},
		{key.NewRune('w'), engine.DeleteCurrentChar{}},
		{key.NewRune('e'), engine.Undo{}},
		{key.NewRune('E'), engine.Redo{}},
		{key.NewRune('d'), engine.SetMark{}},
		{key.NewRune('f'), engine.CutRegion{}},
		{key.NewRune('c'), engine.Paste{}},
		{key.NewRune('/'), engine.EnterSearchMode{}},
		{key.NewRune('b'), engine.RepeatSearchForward{}},
		{key.NewRune('B'), engine.RepeatSearchBackward{}},
		{key.NewRune('`'), engine.Quit{}},
		{{Key: key.KeyRune, Rune: 'm', Mod: key.ModAlt}, engine.EnterCommandMode{}},
		{{Key: key.KeyRune, Rune: 's', Mod: key.ModAlt}, engine.SaveFile{}},
	}

	for _, tt := range tests {
		wantCommand(t, k, mode.Normal, tt.ev, tt.want)
	}
}

func TestNormalModeSequence(t *testing.T) {
	k := New()

	cmd, status := translate(t, k, mode.Normal, key.NewRune('g'))
	if cmd != nil || status != "" {
		t.Fatalf("first g resolved to %#v %q, want pending", cmd, status)
	}
	if k.Pending() != "g" {
		t.Fatalf("Pending() = %q, want g", k.Pending())
	}

	cmd, status = translate(t, k, mode.Normal, key.NewRune('g'))
	if cmd != (engine.MoveFirstRow{}) || status != "" {
		t.Fatalf("g g resolved to %#v %q, want MoveFirstRow", cmd, status)
	}
	if k.Pending() != "" {
		t.Errorf("Pending() = %q after match, want empty", k.Pending())
	}
}

func TestNormalModeSequenceEscape(t *testing.T) {
	k := New()
	translate(t, k, mode.Normal, key.NewRune('g'))

	cmd, status := translate(t, k, mode.Normal, key.NewSpecial(key.KeyEscape))
	if cmd != nil || status != "" {
		t.Errorf("escape after g = %#v %q, want silent cancel", cmd, status)
	}
	if k.Pending() != "" {
		t.Errorf("Pending() = %q after escape, want empty", k.Pending())
	}
}

func TestNormalModeSequenceInvalid(t *testing.T) {
	k := New()
	translate(t, k, mode.Normal, key.NewRune('g'))

	cmd, status := translate(t, k, mode.Normal, key.NewRune('x'))
	if cmd != nil {
		t.Errorf("g x resolved to %#v, want nil", cmd)
	}
	if status != "invalid key 'g x' in normal mode" {
		t.Errorf("status = %q", status)
	}

	// The failed sequence does not linger.
	wantCommand(t, k, mode.Normal, key.NewRune('j'), engine.MoveDown{})
}

func TestNormalModeInvalidKey(t *testing.T) {
	k := New()

	_, status := translate(t, k, mode.Normal, key.NewRune('q'))
	if status != "invalid key 'q' in normal mode" {
		t.Errorf("status = %q", status)
	}

	_, status = translate(t, k, mode.Normal, key.Event{Key: key.KeyRune, Rune: 'h', Mod: key.ModCtrl})
	if status != "invalid key 'C-h' in normal mode" {
		t.Errorf("status = %q", status)
	}
}

func TestNormalModeIgnoredKeys(t *testing.T) {
	k := New()
	for _, ev := range []key.Event{
		key.NewSpecial(key.KeyEscape),
		key.NewSpecial(key.KeyEnter),
		key.NewSpecial(key.KeyBackspace),
	} {
		cmd, status := translate(t, k, mode.Normal, ev)
		if cmd != nil || status != "" {
			t.Errorf("%s = %#v %q, want silent ignore", ev, cmd, status)
		}
	}
}

func TestInsertModeBindings(t *testing.T) {
	k := New()
	tests := []struct {
		ev   key.Event
		want engine.Command
	}{
		{key.NewSpecial(key.KeyBackspace), engine.DeleteLeftChar{}},
		{key.NewSpecial(key.KeyEnter), engine.InsertNewline{}},
		{key.NewSpecial(key.KeyTab), engine.InsertIndent{}},
		{key.NewSpecial(key.KeyEscape), engine.EnterNormalMode{}},
		{key.NewSpecial(key.KeyLeft), engine.MoveLeft{}},
		{key.NewSpecial(key.KeyRight), engine.MoveRight{}},
		{key.NewRune('x'), engine.InsertChar{Ch: 'x'}},
		{key.NewRune(' '), engine.InsertChar{Ch: ' '}},
		{key.NewRune('~'), engine.InsertChar{Ch: '~'}},
	}

	for _, tt := range tests {
		wantCommand(t, k, mode.Insert, tt.ev, tt.want)
	}
}

func TestInsertModeNonPrintable(t *testing.T) {
	k := New()

	_, status := translate(t, k, mode.Insert, key.Event{Key: key.KeyRune, Rune: 'x', Mod: key.ModCtrl})
	if status != "non-printable key 'C-x' in insert mode" {
		t.Errorf("status = %q", status)
	}

	_, status = translate(t, k, mode.Insert, key.NewSpecial(key.KeyDelete))
	if !strings.Contains(status, "non-printable key 'Delete'") {
		t.Errorf("status = %q", status)
	}
}

func TestLineEditorBindings(t *testing.T) {
	k := New()
	tests := []struct {
		ev   key.Event
		want engine.Command
	}{
		{key.NewSpecial(key.KeyEnter), engine.CmdlineAccept{}},
		{key.NewSpecial(key.KeyEscape), engine.CmdlineCancel{}},
		{key.NewSpecial(key.KeyBackspace), engine.CmdlineBackspace{}},
		{{Key: key.KeyRune, Rune: 'h', Mod: key.ModCtrl}, engine.CmdlineCursorLeft{}},
		{{Key: key.KeyRune, Rune: 'l', Mod: key.ModCtrl}, engine.CmdlineCursorRight{}},
		{{Key: key.KeyLeft, Mod: key.ModAlt}, engine.CmdlineHome{}},
		{{Key: key.KeyRight, Mod: key.ModAlt}, engine.CmdlineEnd{}},
		{key.NewRune('x'), engine.CmdlineInsert{Ch: 'x'}},
	}

	for _, m := range []mode.Mode{mode.Command, mode.Search} {
		for _, tt := range tests {
			wantCommand(t, k, m, tt.ev, tt.want)
		}
	}
}

func TestLineEditorDropsUnboundKeys(t *testing.T) {
	k := New()
	for _, ev := range []key.Event{
		key.NewSpecial(key.KeyUp),
		key.NewSpecial(key.KeyDelete),
		{Key: key.KeyRune, Rune: 'x', Mod: key.ModCtrl},
	} {
		cmd, status := translate(t, k, mode.Command, ev)
		if cmd != nil || status != "" {
			t.Errorf("%s = %#v %q, want silent drop", ev, cmd, status)
		}
	}
}

func TestModeChangeClearsPending(t *testing.T) {
	k := New()
	translate(t, k, mode.Normal, key.NewRune('g'))

	wantCommand(t, k, mode.Insert, key.NewRune('g'), engine.InsertChar{Ch: 'g'})
	if k.Pending() != "" {
		t.Errorf("Pending() = %q after mode change, want empty", k.Pending())
	}
}

func TestNewTableRejectsConflicts(t *testing.T) {
	tests := []struct {
		name     string
		bindings []Binding
	}{
		{"duplicate", []Binding{
			{Keys: "x", Command: engine.MoveLeft{}},
			{Keys: "x", Command: engine.MoveRight{}},
		}},
		{"prefix after sequence", []Binding{
			{Keys: "g g", Command: engine.MoveFirstRow{}},
			{Keys: "g", Command: engine.MoveLeft{}},
		}},
		{"sequence after prefix", []Binding{
			{Keys: "g", Command: engine.MoveLeft{}},
			{Keys: "g g", Command: engine.MoveFirstRow{}},
		}},
		{"unparsable", []Binding{
			{Keys: "Q-x", Command: engine.MoveLeft{}},
		}},
		{"no command", []Binding{
			{Keys: "x"},
		}},
	}

	for _, tt := range tests {
		if _, err := NewTable(tt.bindings); err == nil {
			t.Errorf("%s: NewTable accepted bad bindings", tt.name)
		}
	}
}
