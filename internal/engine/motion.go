package engine

// isWordByte reports whether c belongs to a word for the word motions.
// Words are runs of ASCII letters.
func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (e *Engine) cursorUp() {
	e.cursorUpWith(e.renderedX())
}

func (e *Engine) cursorDown() {
	e.cursorDownWith(e.renderedX())
}

// cursorUpWith moves one row up, aiming for the rendered column rx.
// Page motion passes the column the walk started from so every step
// aims for the same place.
func (e *Engine) cursorUpWith(rx int) {
	if e.cy == 0 {
		return
	}
	e.cy--
	e.restoreTargetColumn(rx)
}

func (e *Engine) cursorDownWith(rx int) {
	if e.cy >= e.buf.NumRows()-1 {
		return
	}
	e.cy++
	e.restoreTargetColumn(rx)
}

func (e *Engine) cursorLeft() {
	if e.cx != 0 {
		e.setCursor(e.cx-1, e.cy)
		return
	}
	if e.cy > 0 {
		e.setCursor(e.buf.Row(e.cy-1).Len(), e.cy-1)
	}
}

func (e *Engine) cursorRight() {
	row := e.buf.Row(e.cy)
	if row == nil {
		return
	}
	if e.cx < row.Len() {
		e.setCursor(e.cx+1, e.cy)
		return
	}
	if e.cy != e.buf.NumRows()-1 {
		e.setCursor(0, e.cy+1)
	}
}

func (e *Engine) moveLineEnd() {
	if row := e.buf.Row(e.cy); row != nil {
		e.setCursor(row.Len(), e.cy)
	}
}

func (e *Engine) moveFirstRow() {
	rx := e.renderedX()
	e.cy = 0
	e.restoreTargetColumn(rx)
}

func (e *Engine) moveLastRow() {
	if e.buf.NumRows() == 0 {
		return
	}
	rx := e.renderedX()
	e.cy = e.buf.NumRows() - 1
	e.restoreTargetColumn(rx)
}

// pageUp jumps to the top of the viewport, then walks one screen of
// rows further up.
func (e *Engine) pageUp() {
	if e.buf.NumRows() == 0 {
		return
	}
	rx := e.renderedX()
	e.cy = e.viewTop
	if e.cy > e.buf.NumRows()-1 {
		e.cy = e.buf.NumRows() - 1
	}
	e.restoreTargetColumn(rx)
	for i := 0; i < e.viewRows; i++ {
		e.cursorUpWith(rx)
	}
}

// pageDown jumps to the bottom of the viewport, then walks one screen
// of rows further down.
func (e *Engine) pageDown() {
	if e.buf.NumRows() == 0 {
		return
	}
	rx := e.renderedX()
	e.cy = e.viewTop + e.viewRows - 1
	if e.cy > e.buf.NumRows()-1 {
		e.cy = e.buf.NumRows() - 1
	}
	e.restoreTargetColumn(rx)
	for i := 0; i < e.viewRows; i++ {
		e.cursorDownWith(rx)
	}
}

// wordForward skips separators to the word at or after the cursor and
// moves past its end, stopping at the end of the document when no word
// follows.
func (e *Engine) wordForward() {
	if e.buf.NumRows() == 0 {
		return
	}
	for !isWordByte(e.charAtCursor()) && !e.atEndOfDocument() {
		e.cursorRight()
	}
	if e.atEndOfDocument() {
		return
	}
	for isWordByte(e.charAtCursor()) {
		e.cursorRight()
	}
}

// wordBackward moves left past any separators and then over one word,
// landing on its first byte.
func (e *Engine) wordBackward() {
	if e.cx == 0 && e.cy == 0 {
		return
	}
	for {
		c := e.charBeforeCursor()
		if isWordByte(c) || c == 0 {
			break
		}
		e.cursorLeft()
	}
	for isWordByte(e.charBeforeCursor()) {
		e.cursorLeft()
	}
}

// nextParagraph moves down past the following block of non-blank rows,
// stopping on the blank row after it or on the last row.
func (e *Engine) nextParagraph() {
	last := e.buf.NumRows() - 1
	if e.buf.NumRows() == 0 || e.cy == last {
		return
	}
	rx := e.renderedX()
	e.cy++
	for e.cy != last && e.buf.Row(e.cy).OnlyWhitespace() {
		e.cy++
	}
	for e.cy != last && !e.buf.Row(e.cy).OnlyWhitespace() {
		e.cy++
	}
	e.restoreTargetColumn(rx)
}

// prevParagraph mirrors nextParagraph upward.
func (e *Engine) prevParagraph() {
	if e.cy == 0 {
		return
	}
	rx := e.renderedX()
	e.cy--
	for e.cy != 0 && e.buf.Row(e.cy).OnlyWhitespace() {
		e.cy--
	}
	for e.cy != 0 && !e.buf.Row(e.cy).OnlyWhitespace() {
		e.cy--
	}
	e.restoreTargetColumn(rx)
}
