package engine

import (
	"strconv"
	"strings"

	"github.com/dshills/ked/internal/input/mode"
)

// commandTrim is the byte set stripped from both ends of a command
// line before parsing.
const commandTrim = " \t\n\r\f\v"

// cmdlineInsert types one byte into the line editor. Search mode
// reruns the search after every edit so the match tracks the query.
func (e *Engine) cmdlineInsert(c byte) {
	if c < 32 || c > 126 {
		return
	}
	e.cmdline = append(e.cmdline, 0)
	copy(e.cmdline[e.cmdx+1:], e.cmdline[e.cmdx:])
	e.cmdline[e.cmdx] = c
	e.cmdx++
	if e.mode == mode.Search {
		e.searchForward(string(e.cmdline), false)
	}
}

// cmdlineBackspace erases the byte before the line cursor. On an empty
// line it leaves the editor instead.
func (e *Engine) cmdlineBackspace() {
	if e.cmdx > 0 {
		e.cmdline = append(e.cmdline[:e.cmdx-1], e.cmdline[e.cmdx:]...)
		e.cmdx--
	} else if len(e.cmdline) == 0 {
		e.leaveLineEditor()
	}
	if e.mode == mode.Search {
		e.searchForward(string(e.cmdline), false)
	}
}

// cmdlineAccept leaves the line editor first, then acts on the
// captured line. A search accepted here moves the cursor, and its
// match highlight survives because it is set after the mode change
// already wiped the incremental one.
func (e *Engine) cmdlineAccept() error {
	text := string(e.cmdline)
	entered := e.mode
	e.leaveLineEditor()

	switch entered {
	case mode.Command:
		return e.runCommand(text)
	case mode.Search:
		e.lastSearch = text
		e.searchForward(text, true)
	}
	return nil
}

// runCommand parses and executes one command line.
func (e *Engine) runCommand(text string) error {
	text = strings.Trim(text, commandTrim)
	if text == "" {
		e.StatusErrorf("empty command")
		return nil
	}

	fields := strings.Fields(text)
	name, args := fields[0], fields[1:]

	switch name {
	case "set":
		e.runSet(args)
	case "write":
		if len(args) != 0 {
			e.StatusErrorf("write: unknown extra arguments")
			return nil
		}
		e.save()
	case "exit":
		switch {
		case len(args) == 0:
			return e.quit()
		case args[0] == "--force":
			return ErrQuit
		default:
			e.StatusErrorf("exit: unknown extra arguments")
		}
	default:
		if e.cmdHook != nil && e.cmdHook(name, args) {
			return nil
		}
		e.StatusErrorf("unknown command '%s'", name)
	}
	return nil
}

// runSet changes one editor option.
func (e *Engine) runSet(args []string) {
	if len(args) != 2 {
		e.StatusErrorf("set: usage: set <option> <value>")
		return
	}
	option, value := args[0], args[1]

	switch option {
	case "indent":
		switch value {
		case "spaces":
			e.SetIndentAsSpaces(true)
		case "tabs":
			e.SetIndentAsSpaces(false)
		default:
			e.StatusErrorf("set: invalid value '%s' for '%s'", value, option)
		}
	case "autoindent":
		switch value {
		case "on":
			e.SetAutoIndent(true)
		case "off":
			e.SetAutoIndent(false)
		default:
			e.StatusErrorf("set: invalid value '%s' for '%s'", value, option)
		}
	case "tabstop":
		width, err := strconv.Atoi(value)
		if err != nil || width < 1 {
			e.StatusErrorf("set: invalid value '%s' for '%s'", value, option)
			return
		}
		e.SetTabStop(width)
	default:
		e.StatusErrorf("set: unknown option '%s'", option)
	}
}
