package engine

import (
	"github.com/dshills/ked/internal/clipboard"
	"github.com/dshills/ked/internal/syntax"
)

// Persistence loads and saves documents for the engine. The default is
// storage.FileStore; tests substitute in-memory implementations.
type Persistence interface {
	// Load returns the file's lines without terminators.
	Load(path string) ([]string, error)
	// Save writes text to path and returns the number of bytes written.
	Save(path, text string) (int, error)
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithTabStop sets the tab width for rendering and indent commands.
// Widths below one are ignored.
func WithTabStop(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabStop = width
		}
	}
}

// WithClipboard replaces the clipboard provider used by cut and paste.
func WithClipboard(clip clipboard.Provider) Option {
	return func(e *Engine) {
		if clip != nil {
			e.clip = clip
		}
	}
}

// WithPersistence replaces the file loading and saving collaborator.
func WithPersistence(store Persistence) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithRegistry replaces the syntax ruleset registry consulted when a
// file is opened.
func WithRegistry(langs *syntax.Registry) Option {
	return func(e *Engine) {
		if langs != nil {
			e.langs = langs
		}
	}
}

// WithQuitConfirm sets how many extra quit presses a modified buffer
// demands before the editor exits.
func WithQuitConfirm(times int) Option {
	return func(e *Engine) {
		if times >= 0 {
			e.quitConfirm = times
		}
	}
}

// WithIndentAsSpaces controls whether the indent command emits spaces up
// to the next tab stop instead of a tab byte.
func WithIndentAsSpaces(enabled bool) Option {
	return func(e *Engine) {
		e.indentAsSpaces = enabled
	}
}

// WithAutoIndent controls whether new rows copy the indentation of the
// nearest non-empty row above.
func WithAutoIndent(enabled bool) Option {
	return func(e *Engine) {
		e.autoIndent = enabled
	}
}
