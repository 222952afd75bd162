package engine

import "errors"

// ErrQuit signals that the editor should exit normally. It is the only
// error Apply returns; everything else becomes a status message.
var ErrQuit = errors.New("quit requested")
