package app

import (
	"errors"

	"github.com/dshills/ked/internal/engine"
)

// Application errors.
var (
	// ErrQuit signals that the user asked the editor to exit. It is the
	// engine's quit signal surfaced at the application boundary, so
	// errors.Is matches it across both packages.
	ErrQuit = engine.ErrQuit

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")
)

// InitError reports which component failed during startup.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
