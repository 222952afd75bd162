package buffer

import (
	"errors"
	"strings"

	"github.com/dshills/ked/internal/syntax"
)

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 4

// Errors returned by buffer operations.
var (
	ErrRowOutOfRange = errors.New("row index out of range")
)

// Buffer holds the document as an ordered slice of rows. Every mutation
// re-renders and re-highlights the touched row so the rendered projection
// and its tags never go stale.
type Buffer struct {
	rows    []*Row
	tabStop int
	tr      Translator
	hl      *syntax.Highlighter
	dirty   bool
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		tabStop: DefaultTabStop,
		hl:      syntax.NewHighlighter(nil),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.tr = NewTranslator(b.tabStop)
	return b
}

// Read Operations

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns the row at index at, or nil when at is out of range.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

// TabStop returns the buffer's tab width.
func (b *Buffer) TabStop() int {
	return b.tabStop
}

// Translator returns the column translator bound to the buffer's tab stop.
func (b *Buffer) Translator() Translator {
	return b.tr
}

// Dirty reports whether the buffer has unsaved modifications.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// ClearDirty marks the buffer as matching its on-disk state.
func (b *Buffer) ClearDirty() {
	b.dirty = false
}

// Ruleset returns the active syntax ruleset, or nil when highlighting is
// off.
func (b *Buffer) Ruleset() *syntax.Ruleset {
	return b.hl.Ruleset()
}

// Contents serializes the buffer, terminating every row with a newline.
// A buffer with zero rows serializes to the empty string.
func (b *Buffer) Contents() string {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.Write(row.raw)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IndentWidth returns the rendered width of the row's leading whitespace,
// counting each tab as a full tab stop and each space as one column.
func (b *Buffer) IndentWidth(at int) int {
	row := b.Row(at)
	if row == nil {
		return 0
	}
	indent := 0
	for _, c := range row.raw {
		if c == '\t' {
			indent += b.tabStop
		} else if c == ' ' {
			indent++
		} else {
			break
		}
	}
	return indent
}

// SetRuleset switches the syntax ruleset and re-highlights every row.
// Passing nil turns highlighting off. The modified flag is untouched
// because the text itself has not changed.
func (b *Buffer) SetRuleset(rules *syntax.Ruleset) {
	b.hl.SetRuleset(rules)
	for _, row := range b.rows {
		b.highlightRow(row)
	}
}

// SetTabStop changes the tab width and re-renders every row under the new
// width. Widths below one are ignored. The modified flag is untouched.
func (b *Buffer) SetTabStop(width int) {
	if width <= 0 {
		return
	}
	b.tabStop = width
	b.tr = NewTranslator(width)
	for _, row := range b.rows {
		b.renderRow(row)
		b.highlightRow(row)
	}
}

// LoadLines replaces the buffer contents with the given lines and clears
// the modified flag.
func (b *Buffer) LoadLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		row := &Row{raw: []byte(line)}
		b.renderRow(row)
		b.highlightRow(row)
		b.rows = append(b.rows, row)
	}
	b.dirty = false
}

// updateRow re-renders and re-highlights a row after its raw bytes
// changed and marks the buffer modified.
func (b *Buffer) updateRow(row *Row) {
	b.renderRow(row)
	b.dirty = true
	b.highlightRow(row)
}

// renderRow rebuilds the rendered projection from the raw bytes, widening
// each tab to the next multiple of the tab stop.
func (b *Buffer) renderRow(row *Row) {
	rendered := row.rendered[:0]
	for _, c := range row.raw {
		if c == '\t' {
			rendered = append(rendered, ' ')
			for len(rendered)%b.tabStop != 0 {
				rendered = append(rendered, ' ')
			}
		} else {
			rendered = append(rendered, c)
		}
	}
	row.rendered = rendered
}

// highlightRow refreshes the row's tags against the rendered bytes.
func (b *Buffer) highlightRow(row *Row) {
	row.hl = b.hl.HighlightLine(row.rendered, row.hl)
}
