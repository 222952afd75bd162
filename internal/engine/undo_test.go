package engine

import (
	"testing"

	"github.com/dshills/ked/internal/input/mode"
)

func TestUndoInsertChain(t *testing.T) {
	e := New()
	typeText(t, e, "ab")
	wantRows(t, e, "ab")

	apply(t, e, Undo{})
	wantRows(t, e, "a")
	if !e.Dirty() {
		t.Error("buffer clean with one change still applied")
	}

	apply(t, e, Undo{})
	if e.buf.NumRows() != 0 {
		t.Fatalf("document has %d rows after full undo, want 0", e.buf.NumRows())
	}
	if e.Dirty() {
		t.Error("buffer dirty after undoing every change")
	}

	apply(t, e, Undo{})
	wantStatus(t, e, StatusError, "already at oldest change")
}

func TestRedoReappliesInserts(t *testing.T) {
	e := New()
	typeText(t, e, "ab")
	apply(t, e, Undo{}, Undo{})

	apply(t, e, Redo{})
	wantRows(t, e, "a")
	wantCursor(t, e, 1, 0)
	if !e.Dirty() {
		t.Error("buffer clean after redo reapplied an insert")
	}

	apply(t, e, Redo{})
	wantRows(t, e, "ab")
	wantCursor(t, e, 2, 0)

	apply(t, e, Redo{})
	wantStatus(t, e, StatusError, "already at newest change")
}

func TestRedoOnEmptyJournal(t *testing.T) {
	e := New()
	apply(t, e, Redo{})
	wantStatus(t, e, StatusError, "already at newest change")
}

func TestEditAfterUndoDiscardsRedo(t *testing.T) {
	e := New()
	typeText(t, e, "ab")
	apply(t, e, Undo{})
	typeText(t, e, "c")
	wantRows(t, e, "ac")

	apply(t, e, Redo{})
	wantStatus(t, e, StatusError, "already at newest change")
	wantRows(t, e, "ac")
}

func TestUndoNewlineRejoinsRows(t *testing.T) {
	e := newTestEngine("abcd")
	e.setCursor(2, 0)
	apply(t, e, InsertNewline{})
	wantRows(t, e, "ab", "cd")

	apply(t, e, Undo{})
	wantRows(t, e, "abcd")
	wantCursor(t, e, 2, 0)
	if e.Dirty() {
		t.Error("buffer dirty after undoing the only change")
	}

	apply(t, e, Redo{})
	wantRows(t, e, "ab", "cd")
	wantCursor(t, e, 0, 1)
}

func TestUndoDeleteLeft(t *testing.T) {
	e := newTestEngine("abc")
	e.setCursor(3, 0)
	apply(t, e, DeleteLeftChar{})
	wantRows(t, e, "ab")
	wantCursor(t, e, 2, 0)

	// The cursor stays just after the byte it puts back.
	apply(t, e, Undo{})
	wantRows(t, e, "abc")
	wantCursor(t, e, 3, 0)

	apply(t, e, Redo{})
	wantRows(t, e, "ab")
	wantCursor(t, e, 2, 0)
}

func TestUndoDeleteLeftJoin(t *testing.T) {
	e := newTestEngine("ab", "cd")
	e.setCursor(0, 1)
	apply(t, e, DeleteLeftChar{})
	wantRows(t, e, "abcd")

	apply(t, e, Undo{})
	wantRows(t, e, "ab", "cd")
	wantCursor(t, e, 0, 1)
}

func TestUndoDeleteCurrent(t *testing.T) {
	e := newTestEngine("abc")
	e.setCursor(1, 0)
	apply(t, e, DeleteCurrentChar{})
	wantRows(t, e, "ac")

	// The cursor lands back on the restored byte.
	apply(t, e, Undo{})
	wantRows(t, e, "abc")
	wantCursor(t, e, 1, 0)
}

func TestUndoPaste(t *testing.T) {
	e := newTestEngine("ab")
	e.setCursor(1, 0)
	if err := e.clip.SetText("xy"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	apply(t, e, Paste{})
	wantRows(t, e, "axyb")
	wantCursor(t, e, 3, 0)

	apply(t, e, Undo{})
	wantRows(t, e, "ab")
	wantCursor(t, e, 1, 0)

	apply(t, e, Redo{})
	wantRows(t, e, "axyb")
	wantCursor(t, e, 3, 0)
}

func TestUndoCutAcrossRows(t *testing.T) {
	e := newTestEngine("ab", "cd")
	e.setCursor(1, 0)
	apply(t, e, SetMark{})
	e.setCursor(1, 1)
	apply(t, e, CutRegion{})
	wantRows(t, e, "ad")
	wantCursor(t, e, 1, 0)

	apply(t, e, Undo{})
	wantRows(t, e, "ab", "cd")
	wantCursor(t, e, 1, 1)

	apply(t, e, Redo{})
	wantRows(t, e, "ad")
	wantCursor(t, e, 1, 0)
}

func TestUndoOpenLine(t *testing.T) {
	e := newTestEngine("\ta")
	apply(t, e, OpenLineBelow{})
	wantRows(t, e, "\ta", "    ")
	if e.Mode() != mode.Insert {
		t.Fatalf("mode = %v after open line, want insert", e.Mode())
	}

	apply(t, e, Undo{})
	wantRows(t, e, "\ta")
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v after undo, want normal", e.Mode())
	}

	// Redo recreates the indented row but stays in normal mode.
	apply(t, e, Redo{})
	wantRows(t, e, "\ta", "    ")
	wantCursor(t, e, 4, 1)
	if e.Mode() != mode.Normal {
		t.Errorf("mode = %v after redo, want normal", e.Mode())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := New()
	typeText(t, e, "int x = 1;\nreturn x;")
	want := bufferRows(e)

	for i := 0; i < 25; i++ {
		apply(t, e, Undo{})
	}
	if e.buf.NumRows() != 0 {
		t.Fatalf("document has %d rows after exhaustive undo, want 0", e.buf.NumRows())
	}

	for i := 0; i < 25; i++ {
		apply(t, e, Redo{})
	}
	got := bufferRows(e)
	if len(got) != len(want) {
		t.Fatalf("got %d rows %q, want %d rows %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
