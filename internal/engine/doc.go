// Package engine implements the modal editing core. It owns the text
// buffer, cursor, mark, undo journal, search state, and command line, and
// advances them one command at a time.
//
// The engine provides:
//
//   - A closed command set applied through a single Apply entry point
//   - Tab-aware cursor motion with a remembered target column
//   - Region cut between mark and cursor with clipboard hand-off
//   - A journal-based undo/redo that replays inverse edits
//   - Incremental search over the rendered text with a highlight span
//   - An ex-style command line with a pluggable command hook
//
// Basic usage:
//
//	eng := engine.New()
//	if err := eng.Open("main.c"); err != nil {
//	    return err
//	}
//	err := eng.Apply(engine.InsertChar{Ch: 'x'})
//	snap := eng.Snapshot()
//
// Apply returns ErrQuit when a quit command decides the editor should
// exit; every other failure is reported on the status line and absorbed,
// so the engine is never left structurally invalid.
//
// Concurrency:
//
// An Engine is owned by a single goroutine. Renderers work from the
// value returned by Snapshot, whose row views stay valid until the next
// Apply.
package engine
