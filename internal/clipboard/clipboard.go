// Package clipboard abstracts where cut regions go and paste text comes
// from. The engine always talks to a Provider; the internal provider
// keeps the last cut in memory, while the system provider bridges to the
// OS clipboard so text moves between the editor and other programs.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// ErrEmpty is returned when a paste is requested and nothing has been
// placed on the clipboard.
var ErrEmpty = errors.New("nothing to paste")

// Provider stores and retrieves clipboard text.
type Provider interface {
	// SetText replaces the clipboard contents.
	SetText(text string) error
	// Text returns the clipboard contents, or ErrEmpty when nothing is
	// available.
	Text() (string, error)
}

// Internal is an in-process clipboard. It is the default provider and the
// one used in tests.
type Internal struct {
	text string
	set  bool
}

// NewInternal creates an empty in-process clipboard.
func NewInternal() *Internal {
	return &Internal{}
}

// SetText replaces the clipboard contents. Never fails.
func (c *Internal) SetText(text string) error {
	c.text = text
	c.set = true
	return nil
}

// Text returns the stored text, or ErrEmpty when nothing was ever set.
func (c *Internal) Text() (string, error) {
	if !c.set {
		return "", ErrEmpty
	}
	return c.text, nil
}

// System bridges to the operating system clipboard.
type System struct{}

// SetText writes text to the OS clipboard.
func (System) SetText(text string) error {
	return atotto.WriteAll(text)
}

// Text reads the OS clipboard. An empty clipboard maps to ErrEmpty.
func (System) Text() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// New returns the provider for a configured name. "system" selects the OS
// clipboard; anything else selects the in-process provider.
func New(kind string) Provider {
	if kind == "system" {
		return System{}
	}
	return NewInternal()
}
