package buffer

import "bytes"

// trailingWhitespace is the byte set stripped from row ends before a save.
const trailingWhitespace = " \t\n\r\f\v"

// InsertRow inserts a new row holding text at index at. at may be one past
// the last row, which appends. Out-of-range indices return
// ErrRowOutOfRange and leave the buffer untouched.
func (b *Buffer) InsertRow(at int, text string) (*Row, error) {
	if at < 0 || at > len(b.rows) {
		return nil, ErrRowOutOfRange
	}
	row := &Row{raw: []byte(text)}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	b.updateRow(row)
	return row, nil
}

// DeleteRow removes the row at index at and returns its raw text. Out of
// range indices are a no-op returning "".
func (b *Buffer) DeleteRow(at int) string {
	if at < 0 || at >= len(b.rows) {
		return ""
	}
	text := string(b.rows[at].raw)
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.dirty = true
	return text
}

// RowInsertChar splices a single byte into the row at logical column at.
// Columns past the row end are clamped to an append. A nil row is a no-op.
func (b *Buffer) RowInsertChar(row *Row, at int, c byte) {
	if row == nil {
		return
	}
	if at < 0 || at > len(row.raw) {
		at = len(row.raw)
	}
	row.raw = append(row.raw, 0)
	copy(row.raw[at+1:], row.raw[at:])
	row.raw[at] = c
	b.updateRow(row)
}

// RowInsertText splices text into the row at logical column at. Columns
// past the row end are clamped to an append. A nil row is a no-op.
func (b *Buffer) RowInsertText(row *Row, at int, text string) {
	if row == nil {
		return
	}
	if at < 0 || at > len(row.raw) {
		at = len(row.raw)
	}
	raw := make([]byte, 0, len(row.raw)+len(text))
	raw = append(raw, row.raw[:at]...)
	raw = append(raw, text...)
	raw = append(raw, row.raw[at:]...)
	row.raw = raw
	b.updateRow(row)
}

// RowDeleteRange removes n bytes from the row starting at logical column
// at and returns them. Invalid or empty ranges are a no-op returning "".
func (b *Buffer) RowDeleteRange(row *Row, at, n int) string {
	if row == nil {
		return ""
	}
	if at < 0 || n <= 0 || at+n > len(row.raw) {
		return ""
	}
	removed := string(row.raw[at : at+n])
	row.raw = append(row.raw[:at], row.raw[at+n:]...)
	b.updateRow(row)
	return removed
}

// RowAppend appends text to the end of the row. A nil row is a no-op.
func (b *Buffer) RowAppend(row *Row, text string) {
	if row == nil {
		return
	}
	row.raw = append(row.raw, text...)
	b.updateRow(row)
}

// EnsureNonEmpty inserts a single empty row when the buffer has none, so
// character insertion always has a row to land in.
func (b *Buffer) EnsureNonEmpty() {
	if len(b.rows) == 0 {
		b.InsertRow(0, "")
	}
}

// CollapseIfEmpty removes the last remaining row when it is empty, so a
// document reduced to nothing serializes back to a zero-byte file. cy is
// the cursor row. Reports whether a row was removed.
func (b *Buffer) CollapseIfEmpty(cy int) bool {
	if len(b.rows) == 1 && b.Row(cy).Len() == 0 {
		b.DeleteRow(0)
		return true
	}
	return false
}

// TrimTrailingWhitespace strips trailing whitespace from every row,
// re-rendering the rows it changes. Called before serializing for a save.
func (b *Buffer) TrimTrailingWhitespace() {
	for _, row := range b.rows {
		trimmed := bytes.TrimRight(row.raw, trailingWhitespace)
		if len(trimmed) != len(row.raw) {
			row.raw = trimmed
			b.updateRow(row)
		}
	}
}
