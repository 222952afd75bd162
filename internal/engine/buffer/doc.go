// Package buffer provides the row-based text buffer at the core of the
// editor engine. Each row keeps the raw bytes as read from disk alongside
// a rendered projection in which tabs are expanded to the configured tab
// stop, plus a per-byte syntax tag slice aligned with the rendered bytes.
//
// The buffer package provides:
//
//   - Index-addressed row storage with clamped, nil-safe accessors
//   - Automatic re-rendering and re-highlighting on every row mutation
//   - Logical/rendered column translation for tab-aware cursor movement
//   - A modified flag tracking whether the buffer diverged from disk
//   - Whole-buffer serialization with a trailing newline per row
//
// Basic usage:
//
//	buf := buffer.New(buffer.WithTabStop(4))
//	buf.InsertRow(0, "\tif err != nil {")
//	row := buf.Row(0)
//	rx := buf.Translator().ToRendered(row, 1) // 4: past the expanded tab
//
// Coordinate Systems:
//
// Logical columns (cx) index the raw bytes of a row; rendered columns (rx)
// index the tab-expanded projection. The two drift apart only on rows that
// contain tabs. Translator converts between them; every conversion walks
// the raw bytes so the mapping is exact at tab boundaries.
//
// Concurrency:
//
// A Buffer is not safe for concurrent use. The engine owns its buffer from
// a single goroutine; renderers consume copies handed out through the
// engine's snapshot, never the live rows.
package buffer
