package engine

import (
	"github.com/dshills/ked/internal/engine/history"
	"github.com/dshills/ked/internal/input/mode"
)

// replay walks the journal one entry in the given direction and applies
// the entry's inverse (undo) or the entry itself (redo). The edits go
// through the normal editing operations with recording off, so rows,
// rendering, and highlighting stay consistent without special cases.
func (e *Engine) replay(undo bool) {
	var entry history.Entry
	var err error
	if undo {
		entry, err = e.log.Undo()
	} else {
		entry, err = e.log.Redo()
	}
	if err != nil {
		e.StatusErrorf("%v", err)
		return
	}

	inserted := entry.Kind == history.KindInsertChar || entry.Kind == history.KindInsertNewline
	deleted := entry.Kind == history.KindDeleteCurrent || entry.Kind == history.KindDeleteLeft

	switch {
	case undo && inserted, !undo && deleted:
		// Take the byte back out.
		e.setCursor(entry.X, entry.Y)
		e.deleteCurrentChar(false)

	case undo && deleted, !undo && inserted:
		// Put the byte back in, then land the cursor where the original
		// command left it. A left delete keeps the cursor after the
		// reinserted byte, which is where insertChar already put it.
		e.setCursor(entry.X, entry.Y)
		e.insertChar(false, entry.Payload[0])
		x, y := entry.X, entry.Y
		switch entry.Kind {
		case history.KindInsertChar:
			x = entry.X + 1
		case history.KindInsertNewline:
			x, y = 0, entry.Y+1
		}
		if entry.Kind != history.KindDeleteLeft {
			e.setCursor(x, y)
		}

	case undo && entry.Kind == history.KindCut, !undo && entry.Kind == history.KindPaste:
		e.setCursor(entry.X, entry.Y)
		for i := 0; i < len(entry.Payload); i++ {
			e.insertChar(false, entry.Payload[i])
		}

	case undo && entry.Kind == history.KindPaste, !undo && entry.Kind == history.KindCut:
		e.setCursor(entry.X, entry.Y)
		for i := 0; i < len(entry.Payload); i++ {
			e.deleteCurrentChar(false)
		}

	case entry.Kind == history.KindOpenLine:
		e.setCursor(entry.X, entry.Y)
		if undo {
			e.buf.DeleteRow(entry.Y + 1)
		} else {
			e.openLineBelow(false)
		}
		e.setMode(mode.Normal)

	default:
		e.StatusErrorf("cannot replay %s entry", entry.Kind)
	}

	// A fully undone document is reported clean.
	if undo && e.log.AtOldest() {
		e.buf.ClearDirty()
	}
}
