package plugin

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// builtinCommands are command line names the editor handles itself.
// The command hook never sees them, so registering one would silently
// do nothing; registration rejects them instead.
var builtinCommands = map[string]bool{
	"set":   true,
	"exit":  true,
	"write": true,
}

// registerAPI installs the ked module. The callbacks run inside an
// already locked DoString or RunCommand frame, so none of them take
// h.mu.
func (h *Host) registerAPI() {
	mod := h.L.SetFuncs(h.L.NewTable(), map[string]lua.LGFunction{
		"command": h.luaCommand,
		"status":  h.luaStatus,
		"insert":  h.luaInsert,
		"cursor":  h.luaCursor,
		"line":    h.luaLine,
	})
	h.L.SetGlobal("ked", mod)
}

// command(name, fn)
// Registers fn under name on the command line. fn receives the
// argument words as a table. Registering a name twice replaces the
// earlier function.
func (h *Host) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	if name == "" || strings.ContainsAny(name, " \t") {
		L.ArgError(1, "command name must be a single word")
		return 0
	}
	if builtinCommands[name] {
		L.RaiseError("command %q is built in", name)
		return 0
	}

	h.commands[name] = fn
	return 0
}

// status(msg)
// Shows msg on the message line.
func (h *Host) luaStatus(L *lua.LState) int {
	msg := L.CheckString(1)
	h.ed.StatusInfof("%s", msg)
	return 0
}

// insert(text)
// Types text at the cursor. The insertion lands in the undo journal
// like typed input.
func (h *Host) luaInsert(L *lua.LState) int {
	text := L.CheckString(1)
	h.ed.InsertText(text)
	return 0
}

// cursor() -> col, row
// Returns the cursor position, 1-based the Lua way. col counts bytes
// into the row's text, not screen columns.
func (h *Host) luaCursor(L *lua.LState) int {
	cx, cy := h.ed.Cursor()
	L.Push(lua.LNumber(cx + 1))
	L.Push(lua.LNumber(cy + 1))
	return 2
}

// line([row]) -> text
// Returns the text of the 1-based row, defaulting to the cursor row.
// Returns nil when the row does not exist.
func (h *Host) luaLine(L *lua.LState) int {
	at := L.OptInt(1, 0)
	if at == 0 {
		_, cy := h.ed.Cursor()
		at = cy + 1
	}

	text, ok := h.ed.Line(at - 1)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}
