package engine

import (
	"fmt"

	"github.com/dshills/ked/internal/clipboard"
	"github.com/dshills/ked/internal/engine/buffer"
	"github.com/dshills/ked/internal/engine/history"
	"github.com/dshills/ked/internal/input/mode"
	"github.com/dshills/ked/internal/storage"
	"github.com/dshills/ked/internal/syntax"
)

// StatusKind classifies the status line message.
type StatusKind uint8

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// Span marks the most recent search match in rendered coordinates. The
// end column is exclusive. The zero value is the empty span.
type Span struct {
	StartX, StartY int
	EndX, EndY     int
}

// Empty reports whether the span marks nothing.
func (s Span) Empty() bool {
	return s == Span{}
}

// ScrollTarget asks the renderer to bring a rendered position into view
// before placing the cursor.
type ScrollTarget struct {
	X, Y int
}

// Engine owns one document and executes editing commands against it.
type Engine struct {
	buf   *buffer.Buffer
	log   *history.Log
	clip  clipboard.Provider
	store Persistence
	langs *syntax.Registry

	// Cursor in logical coordinates plus the remembered rendered column
	// that vertical motion aims for.
	cx, cy int
	tx     int

	// Mark set by SetMark; one end of the cut region.
	mx, my int

	mode mode.Mode
	path string

	lastSearch string
	span       Span

	cmdline []byte
	cmdx    int

	status     string
	statusKind StatusKind

	quitTimes   int
	quitConfirm int

	tabStop        int
	indentAsSpaces bool
	autoIndent     bool

	viewTop  int
	viewRows int

	scroll  *ScrollTarget
	cmdHook func(name string, args []string) bool
}

// New creates an engine holding an empty unnamed document.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:            history.NewLog(),
		clip:           clipboard.NewInternal(),
		store:          storage.FileStore{},
		langs:          syntax.NewRegistry(),
		tabStop:        buffer.DefaultTabStop,
		quitConfirm:    2,
		indentAsSpaces: true,
		autoIndent:     true,
		viewRows:       24,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.New(buffer.WithTabStop(e.tabStop))
	e.quitTimes = e.quitConfirm
	return e
}

// Read Operations

// Mode returns the current editing mode.
func (e *Engine) Mode() mode.Mode {
	return e.mode
}

// Path returns the file backing the document, or "" for an unnamed one.
func (e *Engine) Path() string {
	return e.path
}

// Dirty reports whether the document has unsaved changes.
func (e *Engine) Dirty() bool {
	return e.buf.Dirty()
}

// Cursor returns the cursor's logical column and row.
func (e *Engine) Cursor() (cx, cy int) {
	return e.cx, e.cy
}

// Mark returns the cut mark's logical column and row.
func (e *Engine) Mark() (mx, my int) {
	return e.mx, e.my
}

// Buffer exposes the underlying document.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Line returns the text of row at and whether the row exists.
func (e *Engine) Line(at int) (string, bool) {
	if row := e.buf.Row(at); row != nil {
		return row.String(), true
	}
	return "", false
}

// Language returns the name of the active syntax ruleset, or "".
func (e *Engine) Language() string {
	if rules := e.buf.Ruleset(); rules != nil {
		return rules.Name
	}
	return ""
}

// Status returns the pending status line message. The message survives
// until the next Apply call.
func (e *Engine) Status() (string, StatusKind) {
	return e.status, e.statusKind
}

// Status Messages

// StatusInfof sets an informational status message. Messages are
// dropped while a line editor is active, the way the prompt owns the
// message line.
func (e *Engine) StatusInfof(format string, args ...any) {
	if e.mode.HasLineEditor() {
		return
	}
	e.status = fmt.Sprintf(format, args...)
	e.statusKind = StatusInfo
}

// StatusErrorf sets an error status message, dropped while a line
// editor is active.
func (e *Engine) StatusErrorf(format string, args ...any) {
	if e.mode.HasLineEditor() {
		return
	}
	e.status = fmt.Sprintf(format, args...)
	e.statusKind = StatusError
}

// Collaborator Wiring

// SetViewport tells the engine which rows the renderer currently shows.
// Page motion uses the viewport to pick its landing row.
func (e *Engine) SetViewport(top, rows int) {
	if top >= 0 {
		e.viewTop = top
	}
	if rows > 0 {
		e.viewRows = rows
	}
}

// SetCommandHook installs a fallback for command line commands the
// engine does not know. The hook reports whether it handled the
// command.
func (e *Engine) SetCommandHook(hook func(name string, args []string) bool) {
	e.cmdHook = hook
}

// Runtime Settings
//
// The set command and configuration reloads adjust these mid-session.

// SetTabStop changes the tab width and re-renders the document under
// it. Widths below one are ignored.
func (e *Engine) SetTabStop(width int) {
	if width > 0 {
		e.tabStop = width
		e.buf.SetTabStop(width)
	}
}

// SetIndentAsSpaces switches the indent command between emitting spaces
// and a literal tab byte.
func (e *Engine) SetIndentAsSpaces(enabled bool) {
	e.indentAsSpaces = enabled
}

// SetAutoIndent switches indentation copying for newly created rows.
func (e *Engine) SetAutoIndent(enabled bool) {
	e.autoIndent = enabled
}

// SetQuitConfirm changes how many extra quit presses a modified buffer
// demands and restarts the countdown.
func (e *Engine) SetQuitConfirm(times int) {
	if times >= 0 {
		e.quitConfirm = times
		e.quitTimes = times
	}
}

// File Operations

// Open loads path into the buffer, resets editing state, and picks a
// syntax ruleset from the file name.
func (e *Engine) Open(path string) error {
	lines, err := e.store.Load(path)
	if err != nil {
		return err
	}
	e.buf.LoadLines(lines)
	e.path = path
	e.buf.SetRuleset(e.langs.DetectByPath(path))
	e.cx, e.cy, e.tx = 0, 0, 0
	e.mx, e.my = 0, 0
	e.span = Span{}
	e.log = history.NewLog()
	return nil
}

// SetPath names the document's backing file without loading anything
// and picks a syntax ruleset for the new name.
func (e *Engine) SetPath(path string) {
	e.path = path
	e.buf.SetRuleset(e.langs.DetectByPath(path))
}

// InsertText types text at the cursor as insert mode would, recording
// every byte in the journal.
func (e *Engine) InsertText(text string) {
	for i := 0; i < len(text); i++ {
		e.insertChar(true, text[i])
	}
}

func (e *Engine) save() {
	e.buf.TrimTrailingWhitespace()
	if e.path == "" {
		e.StatusErrorf("no filename")
		return
	}
	n, err := e.store.Save(e.path, e.buf.Contents())
	if err != nil {
		e.StatusErrorf("%v", err)
		return
	}
	e.StatusInfof("%d bytes written", n)
	e.buf.ClearDirty()
}

func (e *Engine) quit() error {
	if e.buf.Dirty() && e.quitTimes > 0 {
		e.StatusErrorf("file has unsaved changes: press quit %d more times to abandon them", e.quitTimes)
		e.quitTimes--
		return nil
	}
	return ErrQuit
}

// Command Dispatch

// Apply executes one command. It returns ErrQuit when a quit command
// decides the editor should exit; every other failure is reported on
// the status line and absorbed.
func (e *Engine) Apply(cmd Command) error {
	e.status = ""
	e.statusKind = StatusNone
	e.scroll = nil

	switch c := cmd.(type) {
	// Quit commands skip the shared tail so the unsaved-changes
	// countdown survives repeated presses.
	case Quit:
		return e.quit()
	case ForceQuit:
		return ErrQuit

	// History replay manages cursor and rows itself.
	case Undo:
		e.replay(true)
		return nil
	case Redo:
		e.replay(false)
		return nil

	// Indent inserts skip the shared tail, so a search span survives
	// an indent but not a plain character insert.
	case InsertIndent:
		e.insertIndent(true)
		return nil

	// Line editor commands run against the prompt, not the document.
	// Leaving the prompt runs the shared tail through leaveLineEditor.
	case CmdlineInsert:
		e.cmdlineInsert(c.Ch)
		return nil
	case CmdlineBackspace:
		e.cmdlineBackspace()
		return nil
	case CmdlineCursorLeft:
		if e.cmdx > 0 {
			e.cmdx--
		}
		return nil
	case CmdlineCursorRight:
		if e.cmdx < len(e.cmdline) {
			e.cmdx++
		}
		return nil
	case CmdlineHome:
		e.cmdx = 0
		return nil
	case CmdlineEnd:
		e.cmdx = len(e.cmdline)
		return nil
	case CmdlineAccept:
		return e.cmdlineAccept()
	case CmdlineCancel:
		e.leaveLineEditor()
		return nil

	// Repeating a search must leave the fresh match highlighted, so it
	// skips the span reset in the shared tail.
	case RepeatSearchForward:
		e.repeatSearch(false)
		e.clampCursorX()
		e.quitTimes = e.quitConfirm
		return nil
	case RepeatSearchBackward:
		e.repeatSearch(true)
		e.clampCursorX()
		e.quitTimes = e.quitConfirm
		return nil
	}

	e.dispatch(cmd)

	e.clampCursorX()
	e.quitTimes = e.quitConfirm
	e.span = Span{}
	return nil
}

func (e *Engine) dispatch(cmd Command) {
	switch c := cmd.(type) {
	case MoveUp:
		e.cursorUp()
	case MoveDown:
		e.cursorDown()
	case MoveLeft:
		e.cursorLeft()
	case MoveRight:
		e.cursorRight()
	case MoveLineBegin:
		e.setCursor(0, e.cy)
	case MoveLineEnd:
		e.moveLineEnd()
	case MoveWordForward:
		e.wordForward()
	case MoveWordBackward:
		e.wordBackward()
	case MoveFirstRow:
		e.moveFirstRow()
	case MoveLastRow:
		e.moveLastRow()
	case MovePageUp:
		e.pageUp()
	case MovePageDown:
		e.pageDown()
	case MoveNextPara:
		e.nextParagraph()
	case MovePrevPara:
		e.prevParagraph()

	case EnterNormalMode:
		e.setMode(mode.Normal)
	case EnterInsertMode:
		e.setMode(mode.Insert)
	case EnterCommandMode:
		e.setMode(mode.Command)
	case EnterSearchMode:
		e.setMode(mode.Search)

	case SetMark:
		e.mx, e.my = e.cx, e.cy
	case CutRegion:
		e.cutRegion(true)
	case Paste:
		e.paste(true)
	case OpenLineBelow:
		e.openLineBelow(true)

	case InsertChar:
		e.insertChar(true, c.Ch)
	case InsertNewline:
		e.insertNewline(true, e.autoIndent)
	case DeleteCurrentChar:
		e.deleteCurrentChar(true)
	case DeleteLeftChar:
		e.deleteLeftChar(true)

	case SaveFile:
		e.save()
	}
}

// setMode switches modes and resets the line editor. Any pending status
// message is dropped with it.
func (e *Engine) setMode(m mode.Mode) {
	e.mode = m
	e.cmdline = e.cmdline[:0]
	e.cmdx = 0
	e.status = ""
	e.statusKind = StatusNone
}

// leaveLineEditor returns to normal mode with the same tail a
// dispatched command would run.
func (e *Engine) leaveLineEditor() {
	e.setMode(mode.Normal)
	e.clampCursorX()
	e.quitTimes = e.quitConfirm
	e.span = Span{}
}
