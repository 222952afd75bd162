package buffer

import "github.com/dshills/ked/internal/syntax"

// Row is a single line of text. The raw bytes are what load and save see;
// the rendered bytes expand each tab to the next tab stop and are what the
// screen, search, and highlighting operate on. hl always has exactly one
// tag per rendered byte.
type Row struct {
	raw      []byte
	rendered []byte
	hl       []syntax.Tag
}

// Len returns the raw byte length. A nil row has length 0.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.raw)
}

// RenderedLen returns the rendered byte length. A nil row has length 0.
func (r *Row) RenderedLen() int {
	if r == nil {
		return 0
	}
	return len(r.rendered)
}

// Raw returns the raw bytes. Callers must not modify the returned slice.
func (r *Row) Raw() []byte {
	if r == nil {
		return nil
	}
	return r.raw
}

// Rendered returns the tab-expanded bytes. Callers must not modify the
// returned slice.
func (r *Row) Rendered() []byte {
	if r == nil {
		return nil
	}
	return r.rendered
}

// Tags returns the syntax tag for each rendered byte.
func (r *Row) Tags() []syntax.Tag {
	if r == nil {
		return nil
	}
	return r.hl
}

// String returns the raw bytes as a string.
func (r *Row) String() string {
	if r == nil {
		return ""
	}
	return string(r.raw)
}

// OnlyWhitespace reports whether the row is empty or holds nothing but
// spaces and tabs.
func (r *Row) OnlyWhitespace() bool {
	if r == nil {
		return true
	}
	for _, c := range r.raw {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}
