package engine

// setCursor places the cursor at logical column cx on row cy and
// remembers the rendered column as the target for vertical motion.
func (e *Engine) setCursor(cx, cy int) {
	e.cx = cx
	e.cy = cy
	e.tx = e.buf.Translator().ToRendered(e.buf.Row(cy), cx)
}

// renderedX returns the cursor's rendered column on its current row.
func (e *Engine) renderedX() int {
	return e.buf.Translator().ToRendered(e.buf.Row(e.cy), e.cx)
}

// restoreTargetColumn recomputes the logical column after the cursor
// changed rows. rx is the rendered column the cursor occupied on the
// row the motion started from; the cursor aims for the larger of rx and
// the remembered target so a trip through short rows comes back out at
// the original column.
func (e *Engine) restoreTargetColumn(rx int) {
	if e.buf.NumRows() == 0 {
		return
	}
	aim := e.tx
	if rx > aim {
		aim = rx
	}
	e.cx = e.buf.Translator().ToLogical(e.buf.Row(e.cy), aim)
}

// clampCursorX pulls the cursor back inside its row after a command
// shortened it. The vertical target column is left alone.
func (e *Engine) clampCursorX() {
	rowLen := 0
	if row := e.buf.Row(e.cy); row != nil {
		rowLen = row.Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// charAt returns the byte at a logical position, '\n' at the end of a
// row, and 0 outside the document.
func (e *Engine) charAt(x, y int) byte {
	row := e.buf.Row(y)
	if row == nil || x < 0 || x > row.Len() {
		return 0
	}
	if x == row.Len() {
		return '\n'
	}
	return row.Raw()[x]
}

// charAtCursor returns the byte under the cursor.
func (e *Engine) charAtCursor() byte {
	return e.charAt(e.cx, e.cy)
}

// charBeforeCursor returns the byte to the left of the cursor, '\n'
// across a row boundary, and 0 at the top of the document.
func (e *Engine) charBeforeCursor() byte {
	if e.cx == 0 {
		if e.cy == 0 {
			return 0
		}
		return '\n'
	}
	return e.charAt(e.cx-1, e.cy)
}

// atEndOfDocument reports whether the cursor sits past the last byte of
// the last row.
func (e *Engine) atEndOfDocument() bool {
	if e.cy != e.buf.NumRows()-1 {
		return false
	}
	row := e.buf.Row(e.cy)
	return row != nil && e.cx == row.Len()
}
