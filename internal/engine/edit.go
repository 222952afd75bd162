package engine

import (
	"github.com/dshills/ked/internal/engine/history"
	"github.com/dshills/ked/internal/input/mode"
)

func (e *Engine) pushHistory(kind history.Kind, payload string, x, y int) {
	e.log.Push(history.Entry{Kind: kind, Payload: payload, X: x, Y: y})
}

// insertChar inserts one byte at the cursor and advances it. A newline
// byte turns into a row split without auto indent, which keeps pasted
// and replayed text byte for byte.
func (e *Engine) insertChar(record bool, c byte) {
	if c == '\n' {
		e.insertNewline(record, false)
		return
	}
	if record {
		e.pushHistory(history.KindInsertChar, string([]byte{c}), e.cx, e.cy)
	}
	e.buf.EnsureNonEmpty()
	e.buf.RowInsertChar(e.buf.Row(e.cy), e.cx, c)
	e.setCursor(e.cx+1, e.cy)
}

// insertNewline splits the current row at the cursor and moves to the
// start of the new row.
func (e *Engine) insertNewline(record, indent bool) {
	if record {
		e.pushHistory(history.KindInsertNewline, "\n", e.cx, e.cy)
	}
	e.buf.EnsureNonEmpty()
	if e.cx == 0 {
		e.buf.InsertRow(e.cy, "")
	} else {
		row := e.buf.Row(e.cy)
		tail := e.buf.RowDeleteRange(row, e.cx, row.Len()-e.cx)
		e.buf.InsertRow(e.cy+1, tail)
	}
	e.setCursor(0, e.cy+1)
	if indent {
		e.autoindentNewRow()
	}
}

// autoindentNewRow reproduces the indentation of the nearest row above
// that has any content. Only meaningful at the start of a fresh row;
// the inserted bytes stay out of the journal so undoing the newline is
// a single step.
func (e *Engine) autoindentNewRow() {
	if e.cx != 0 {
		return
	}
	target := 0
	for y := e.cy - 1; y >= 0; y-- {
		if e.buf.Row(y).Len() == 0 {
			continue
		}
		target = e.buf.IndentWidth(y)
		break
	}

	ts := e.buf.TabStop()
	for n := target / ts; n > 0; n-- {
		if e.indentAsSpaces {
			for i := 0; i < ts; i++ {
				e.insertChar(false, ' ')
			}
		} else {
			e.insertChar(false, '\t')
		}
	}
	for n := target % ts; n > 0; n-- {
		e.insertChar(false, ' ')
	}
}

// insertIndent inserts a tab byte, or enough spaces to reach the next
// tab stop from the cursor's rendered column.
func (e *Engine) insertIndent(record bool) {
	if !e.indentAsSpaces {
		e.insertChar(record, '\t')
		return
	}
	n := e.buf.TabStop() - e.renderedX()%e.buf.TabStop()
	for i := 0; i < n; i++ {
		e.insertChar(record, ' ')
	}
}

// deleteLeftChar removes the byte before the cursor, joining the row
// with the one above when the cursor is at column zero.
func (e *Engine) deleteLeftChar(record bool) {
	if e.cx == 0 && e.cy == 0 {
		e.StatusErrorf("nothing to delete")
		return
	}
	if e.cx > 0 {
		row := e.buf.Row(e.cy)
		if row == nil {
			return
		}
		c := row.Raw()[e.cx-1]
		e.buf.RowDeleteRange(row, e.cx-1, 1)
		e.setCursor(e.cx-1, e.cy)
		if record {
			e.pushHistory(history.KindDeleteLeft, string([]byte{c}), e.cx, e.cy)
		}
	} else {
		e.setCursor(e.buf.Row(e.cy-1).Len(), e.cy-1)
		if record {
			e.pushHistory(history.KindDeleteLeft, "\n", e.cx, e.cy)
		}
		e.buf.RowAppend(e.buf.Row(e.cy), e.buf.Row(e.cy+1).String())
		e.buf.DeleteRow(e.cy + 1)
	}
	e.buf.CollapseIfEmpty(e.cy)
}

// deleteCurrentChar removes the byte under the cursor without moving
// it, joining the next row up when the cursor sits at the end of a row.
func (e *Engine) deleteCurrentChar(record bool) {
	row := e.buf.Row(e.cy)
	if row == nil {
		return
	}
	if e.cx == row.Len() {
		if e.cy < e.buf.NumRows()-1 {
			if record {
				e.pushHistory(history.KindDeleteCurrent, "\n", e.cx, e.cy)
			}
			e.buf.RowAppend(row, e.buf.Row(e.cy+1).String())
			e.buf.DeleteRow(e.cy + 1)
		}
	} else {
		if record {
			e.pushHistory(history.KindDeleteCurrent, string([]byte{row.Raw()[e.cx]}), e.cx, e.cy)
		}
		e.buf.RowDeleteRange(row, e.cx, 1)
	}
	e.buf.CollapseIfEmpty(e.cy)
}

// openLineBelow opens an indented empty row under the cursor and
// switches to insert mode.
func (e *Engine) openLineBelow(record bool) {
	if record {
		e.pushHistory(history.KindOpenLine, "", e.cx, e.cy)
	}
	e.buf.EnsureNonEmpty()
	e.buf.InsertRow(e.cy+1, "")
	e.setCursor(0, e.cy+1)
	if e.autoIndent {
		e.autoindentNewRow()
	}
	e.setMode(mode.Insert)
}

// paste inserts the clipboard text at the cursor byte by byte, so
// embedded newlines split rows the way typing them would.
func (e *Engine) paste(record bool) {
	text, err := e.clip.Text()
	if err != nil {
		e.StatusErrorf("%v", err)
		return
	}
	if record {
		e.pushHistory(history.KindPaste, text, e.cx, e.cy)
	}
	for i := 0; i < len(text); i++ {
		e.insertChar(false, text[i])
	}
}
