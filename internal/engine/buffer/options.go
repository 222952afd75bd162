package buffer

import "github.com/dshills/ked/internal/syntax"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabStop sets the buffer's tab width. Non-positive widths are
// ignored.
func WithTabStop(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabStop = width
		}
	}
}

// WithRuleset sets the initial syntax ruleset. nil leaves highlighting
// off.
func WithRuleset(rules *syntax.Ruleset) Option {
	return func(b *Buffer) {
		b.hl.SetRuleset(rules)
	}
}
