package engine

import (
	"bytes"

	"github.com/dshills/ked/internal/engine/buffer"
)

// searchForward looks for query in the rendered rows from just after
// the cursor to the end of the document. A hit updates the highlight
// span and asks the renderer to scroll it into view; setCursor moves
// the cursor to the hit as well. An empty query only clears the span.
func (e *Engine) searchForward(query string, setCursor bool) {
	if query == "" {
		e.span = Span{}
		return
	}
	needle := []byte(query)
	for i := e.cy; i < e.buf.NumRows(); i++ {
		row := e.buf.Row(i)
		hay := row.Rendered()
		start := 0
		if i == e.cy {
			start = e.renderedX() + 1
		}
		if start > len(hay) {
			continue
		}
		off := bytes.Index(hay[start:], needle)
		if off < 0 {
			continue
		}
		e.markMatch(row, i, start+off, len(needle), setCursor)
		return
	}
	e.StatusErrorf("search reached EOF")
	e.span = Span{}
}

// searchBackward looks for the nearest match at or before the cursor,
// scanning up to the first row. The cursor row itself is skipped when
// the cursor sits at column zero.
func (e *Engine) searchBackward(query string, setCursor bool) {
	if query == "" {
		e.span = Span{}
		return
	}
	needle := []byte(query)
	for i := e.cy; i >= 0; i-- {
		if i == e.cy && e.cx == 0 {
			continue
		}
		row := e.buf.Row(i)
		hay := row.Rendered()
		limit := len(hay)
		if i == e.cy {
			// Matches must start strictly left of the cursor.
			limit = e.renderedX() - 1 + len(needle)
			if limit > len(hay) {
				limit = len(hay)
			}
		}
		match := bytes.LastIndex(hay[:limit], needle)
		if match < 0 {
			continue
		}
		e.markMatch(row, i, match, len(needle), setCursor)
		return
	}
	e.StatusErrorf("search reached BOF")
	e.span = Span{}
}

// markMatch records a hit at rendered column rx on row y.
func (e *Engine) markMatch(row *buffer.Row, y, rx, width int, setCursor bool) {
	if setCursor {
		e.setCursor(e.buf.Translator().ToLogical(row, rx), y)
	}
	e.span = Span{StartX: rx, StartY: y, EndX: rx + width, EndY: y}
	e.scroll = &ScrollTarget{X: rx + width, Y: y}
}

// repeatSearch reruns the last accepted search query, moving the
// cursor to the hit.
func (e *Engine) repeatSearch(backward bool) {
	if e.lastSearch == "" {
		e.StatusErrorf("empty prev search")
		return
	}
	if backward {
		e.searchBackward(e.lastSearch, true)
		return
	}
	e.searchForward(e.lastSearch, true)
}
