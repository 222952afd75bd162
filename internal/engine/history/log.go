package history

import "errors"

// Errors reported when stepping past either end of the journal.
var (
	ErrAtOldestChange = errors.New("already at oldest change")
	ErrAtNewestChange = errors.New("already at newest change")
)

// Log is the undo journal. pos indexes the last applied entry and is -1
// when everything recorded has been undone.
type Log struct {
	entries []Entry
	pos     int
}

// NewLog creates an empty journal.
func NewLog() *Log {
	return &Log{pos: -1}
}

// Push records a new edit. Any entries past the current position are
// abandoned redo state and are discarded first.
func (l *Log) Push(e Entry) {
	l.entries = append(l.entries[:l.pos+1], e)
	l.pos = len(l.entries) - 1
}

// Undo steps the position back and returns the entry to invert.
// Returns ErrAtOldestChange when nothing is left to undo.
func (l *Log) Undo() (Entry, error) {
	if len(l.entries) == 0 || l.pos == -1 {
		return Entry{}, ErrAtOldestChange
	}
	e := l.entries[l.pos]
	l.pos--
	return e, nil
}

// Redo steps the position forward and returns the entry to reapply.
// Returns ErrAtNewestChange when the position is already at the end,
// which an empty journal always is.
func (l *Log) Redo() (Entry, error) {
	if l.pos == len(l.entries)-1 {
		return Entry{}, ErrAtNewestChange
	}
	l.pos++
	return l.entries[l.pos], nil
}

// AtOldest reports whether every recorded edit has been undone.
func (l *Log) AtOldest() bool {
	return l.pos == -1
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Position returns the index of the last applied entry, or -1.
func (l *Log) Position() int {
	return l.pos
}
