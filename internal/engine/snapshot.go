package engine

import (
	"github.com/dshills/ked/internal/input/mode"
	"github.com/dshills/ked/internal/syntax"
)

// RowView is one row prepared for drawing: the tab-expanded bytes and a
// highlight tag per byte.
type RowView struct {
	Rendered []byte
	Tags     []syntax.Tag
}

// Snapshot is everything a renderer needs to draw one frame. Row views
// alias the engine's storage and stay valid until the next Apply call.
type Snapshot struct {
	Rows []RowView
	Mode mode.Mode

	// Cursor position, with the column in rendered coordinates.
	CursorX int
	CursorY int

	Path     string
	Dirty    bool
	Language string

	// Span is the current search match, empty when there is none.
	Span Span

	Status     string
	StatusKind StatusKind

	// Line editor contents and cursor, meaningful when Mode has one.
	Cmdline  string
	CmdlineX int

	// ScrollTo is a one-shot request to bring a position into view
	// before placing the cursor, nil when nothing asked for it.
	ScrollTo *ScrollTarget
}

// Snapshot captures the current state for drawing.
func (e *Engine) Snapshot() Snapshot {
	rows := make([]RowView, e.buf.NumRows())
	for i := range rows {
		row := e.buf.Row(i)
		rows[i] = RowView{Rendered: row.Rendered(), Tags: row.Tags()}
	}
	return Snapshot{
		Rows:       rows,
		Mode:       e.mode,
		CursorX:    e.renderedX(),
		CursorY:    e.cy,
		Path:       e.path,
		Dirty:      e.buf.Dirty(),
		Language:   e.Language(),
		Span:       e.span,
		Status:     e.status,
		StatusKind: e.statusKind,
		Cmdline:    string(e.cmdline),
		CmdlineX:   e.cmdx,
		ScrollTo:   e.scroll,
	}
}
