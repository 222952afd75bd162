// Package keymap maps key events to editor commands, one binding table
// per input mode.
//
// Bindings name their keys the way the key package parses them:
//
//	"j"       - single character
//	"g g"     - multi-key sequence
//	"C-h"     - Ctrl+H
//	"A-Left"  - Alt+Left arrow
//
// A Keymap is stateful: a key that begins a multi-key sequence is held
// as pending until the next key resolves or cancels it. Keys with no
// binding fall through per mode. Normal mode reports them on the status
// line, insert mode types printable characters and reports the rest,
// and the line editor modes type printable characters and drop the
// rest.
package keymap
