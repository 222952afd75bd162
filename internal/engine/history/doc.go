// Package history provides the undo journal for the editor engine.
//
// The journal is a single ordered log of edit records with a position
// index marking the last applied entry. Undoing steps the position back
// and hands the caller the entry to invert; redoing steps it forward and
// hands back the entry to reapply. Pushing a new record while the
// position sits before the end discards the abandoned redo tail, so the
// log never branches.
//
// Each Entry carries the minimum needed to invert an edit: its kind, the
// affected text, and the cursor position the edit was made at. The
// journal itself never touches a buffer; the engine owns replay and keeps
// the inverse-operation pairing in one place.
//
// A position of -1 means every recorded edit has been undone, which the
// engine uses to restore the buffer's unmodified state.
package history
