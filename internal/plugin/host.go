// Package plugin embeds a sandboxed Lua runtime that extends the
// command line with script-defined commands. A single init script is
// loaded at startup; everything it registers through the ked module
// stays callable for the life of the session.
package plugin

import (
	"fmt"
	"os"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Editor is the slice of the editor a script is allowed to drive. The
// engine satisfies it.
type Editor interface {
	// InsertText types text at the cursor, recorded in the undo journal.
	InsertText(text string)
	// StatusInfof shows an informational status message.
	StatusInfof(format string, args ...any)
	// StatusErrorf shows an error status message.
	StatusErrorf(format string, args ...any)
	// Cursor returns the logical cursor column and row.
	Cursor() (cx, cy int)
	// Line returns the text of row at and whether the row exists.
	Line(at int) (string, bool)
}

// Host owns one Lua state and the commands scripts registered in it.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes the
// exported entry points; the ked module callbacks in api.go run inside
// an already locked call and must not take the lock again.
type Host struct {
	mu     sync.Mutex
	L      *lua.LState
	ed     Editor
	closed bool

	commands map[string]*lua.LFunction
}

// NewHost creates a sandboxed Lua state bound to ed and installs the
// ked module in it.
func NewHost(ed Editor) *Host {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	h := &Host{
		L:        L,
		ed:       ed,
		commands: make(map[string]*lua.LFunction),
	}

	openSafeLibraries(L)
	removeDangerousGlobals(L)
	h.registerAPI()

	return h
}

// openSafeLibraries opens only Lua standard libraries that cannot
// reach outside the interpreter. io, os, debug, and package stay
// closed so scripts cannot touch the file system, run processes, or
// load code past the sandbox.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// removeDangerousGlobals drops the base-library loaders that would let
// a script pull in arbitrary code.
func removeDangerousGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// LoadInit runs the init script at path and reports whether one was
// found. A missing file is not an error, an editor without plugins is
// normal.
func (h *Host) LoadInit(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false, ErrHostClosed
	}
	if err := h.doWithRecovery(func() error { return h.L.DoFile(path) }); err != nil {
		return false, fmt.Errorf("running %s: %w", path, err)
	}
	return true, nil
}

// DoString executes a chunk of Lua code.
func (h *Host) DoString(code string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	return h.doWithRecovery(func() error { return h.L.DoString(code) })
}

// RunCommand invokes a script-registered command with the command
// line's arguments. It reports whether the name was registered; the
// caller falls through to its own unknown-command handling otherwise.
// A script error becomes a status message, never a Go error, so a
// broken plugin cannot take the editor down.
func (h *Host) RunCommand(name string, args []string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	fn, ok := h.commands[name]
	if !ok {
		return false
	}

	tbl := h.L.NewTable()
	for _, arg := range args {
		tbl.Append(lua.LString(arg))
	}

	if err := h.call(fn, tbl); err != nil {
		h.ed.StatusErrorf("%s: %v", name, err)
	}
	return true
}

// Commands returns the registered command names, sorted.
func (h *Host) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases the Lua state. It may be called more than once.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.L.Close()
	h.closed = true
	h.commands = nil
}

// call runs fn with args, discarding return values.
func (h *Host) call(fn *lua.LFunction, args ...lua.LValue) error {
	return h.doWithRecovery(func() error {
		h.L.Push(fn)
		for _, arg := range args {
			h.L.Push(arg)
		}
		return h.L.PCall(len(args), 0, nil)
	})
}

// doWithRecovery converts a Lua panic into an error.
func (h *Host) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
