package engine

import (
	"strings"

	"github.com/dshills/ked/internal/engine/history"
)

// clampedMark returns the mark pulled inside the current document. The
// mark is a plain position, so edits after setting it can leave it past
// the end of a row or of the file.
func (e *Engine) clampedMark() (mx, my int) {
	my = e.my
	if last := e.buf.NumRows() - 1; my > last {
		my = last
	}
	if my < 0 {
		my = 0
	}
	mx = e.mx
	if mx < 0 {
		mx = 0
	}
	rowLen := 0
	if row := e.buf.Row(my); row != nil {
		rowLen = row.Len()
	}
	if mx > rowLen {
		mx = rowLen
	}
	return mx, my
}

// cutRegion removes the text between the mark and the cursor, puts it
// on the clipboard, and leaves the cursor at the region start. The
// clipboard text carries interior newlines but no terminator.
func (e *Engine) cutRegion(record bool) {
	mx, my := e.clampedMark()

	var startx, starty, endx, endy int
	switch {
	case my < e.cy:
		startx, starty, endx, endy = mx, my, e.cx, e.cy
	case e.cy < my:
		startx, starty, endx, endy = e.cx, e.cy, mx, my
	default:
		starty, endy = e.cy, e.cy
		startx, endx = mx, e.cx
		if startx > endx {
			startx, endx = endx, startx
		}
		if startx == endx {
			e.StatusErrorf("nothing to cut")
			return
		}
	}

	var cut string
	switch {
	case startx == 0 && starty == 0 &&
		endy == e.buf.NumRows()-1 && endx == e.buf.Row(endy).Len():
		// The region is the whole document.
		var sb strings.Builder
		n := e.buf.NumRows()
		for i := 0; i < n; i++ {
			if i != 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(e.buf.DeleteRow(0))
		}
		cut = sb.String()

	case starty == endy:
		cut = e.buf.RowDeleteRange(e.buf.Row(starty), startx, endx-startx)

	default:
		var sb strings.Builder
		startRowDeleted := false
		if startx == 0 {
			sb.WriteString(e.buf.DeleteRow(starty))
			startRowDeleted = true
		} else {
			row := e.buf.Row(starty)
			sb.WriteString(e.buf.RowDeleteRange(row, startx, row.Len()-startx))
		}

		for i := starty + 1; i < endy; i++ {
			at := starty + 1
			if startRowDeleted {
				at = starty
			}
			sb.WriteByte('\n')
			sb.WriteString(e.buf.DeleteRow(at))
		}

		sb.WriteByte('\n')
		if startRowDeleted {
			// The end row slid up to starty; strip its cut prefix and
			// keep its tail as the row at the region start.
			sb.WriteString(e.buf.RowDeleteRange(e.buf.Row(starty), 0, endx))
		} else {
			// Move the end row's tail onto the start row, then the end
			// row holds exactly the cut prefix.
			endRow := e.buf.Row(starty + 1)
			tail := e.buf.RowDeleteRange(endRow, endx, endRow.Len()-endx)
			e.buf.RowAppend(e.buf.Row(starty), tail)
			sb.WriteString(e.buf.DeleteRow(starty + 1))
		}
		cut = sb.String()
	}

	e.setCursor(startx, starty)
	if err := e.clip.SetText(cut); err != nil {
		e.StatusErrorf("%v", err)
	}
	if record {
		e.pushHistory(history.KindCut, cut, e.cx, e.cy)
	}
}
