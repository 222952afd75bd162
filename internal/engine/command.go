package engine

// Command is one editing command. The set is closed: every implementation
// lives in this file and Apply dispatches over all of them, so a new
// command cannot be added without the compiler pointing at the switch.
type Command interface {
	isCommand()
}

// Cursor motion.
type (
	MoveUp           struct{}
	MoveDown         struct{}
	MoveLeft         struct{}
	MoveRight        struct{}
	MoveLineBegin    struct{}
	MoveLineEnd      struct{}
	MoveWordForward  struct{}
	MoveWordBackward struct{}
	MoveFirstRow     struct{}
	MoveLastRow      struct{}
	MovePageUp       struct{}
	MovePageDown     struct{}
	MoveNextPara     struct{}
	MovePrevPara     struct{}
)

// Mode switches.
type (
	EnterNormalMode  struct{}
	EnterInsertMode  struct{}
	EnterCommandMode struct{}
	EnterSearchMode  struct{}
)

// Editing.
type (
	// InsertChar inserts one printable byte at the cursor.
	InsertChar struct{ Ch byte }
	// InsertNewline splits the current row at the cursor.
	InsertNewline struct{}
	// InsertIndent inserts a tab, or spaces up to the next tab stop.
	InsertIndent struct{}
	// DeleteCurrentChar deletes the byte under the cursor, joining rows
	// at the end of a row.
	DeleteCurrentChar struct{}
	// DeleteLeftChar deletes the byte before the cursor, joining rows at
	// the start of a row.
	DeleteLeftChar struct{}
	// OpenLineBelow opens an indented empty row under the cursor and
	// enters insert mode.
	OpenLineBelow struct{}
	// SetMark records the cursor as one end of the cut region.
	SetMark struct{}
	// CutRegion removes the text between mark and cursor to the
	// clipboard.
	CutRegion struct{}
	// Paste inserts the clipboard contents at the cursor.
	Paste struct{}
)

// Search.
type (
	RepeatSearchForward  struct{}
	RepeatSearchBackward struct{}
)

// History.
type (
	Undo struct{}
	Redo struct{}
)

// File and session.
type (
	SaveFile struct{}
	// Quit exits, demanding confirmation while unsaved changes exist.
	Quit struct{}
	// ForceQuit exits unconditionally.
	ForceQuit struct{}
)

// Command-line editing, active in command and search modes.
type (
	CmdlineInsert      struct{ Ch byte }
	CmdlineBackspace   struct{}
	CmdlineCursorLeft  struct{}
	CmdlineCursorRight struct{}
	CmdlineHome        struct{}
	CmdlineEnd         struct{}
	// CmdlineAccept leaves the line editor and runs the command or
	// final search.
	CmdlineAccept struct{}
	// CmdlineCancel discards the line and returns to normal mode.
	CmdlineCancel struct{}
)

func (MoveUp) isCommand()           {}
func (MoveDown) isCommand()         {}
func (MoveLeft) isCommand()         {}
func (MoveRight) isCommand()        {}
func (MoveLineBegin) isCommand()    {}
func (MoveLineEnd) isCommand()      {}
func (MoveWordForward) isCommand()  {}
func (MoveWordBackward) isCommand() {}
func (MoveFirstRow) isCommand()     {}
func (MoveLastRow) isCommand()      {}
func (MovePageUp) isCommand()       {}
func (MovePageDown) isCommand()     {}
func (MoveNextPara) isCommand()     {}
func (MovePrevPara) isCommand()     {}

func (EnterNormalMode) isCommand()  {}
func (EnterInsertMode) isCommand()  {}
func (EnterCommandMode) isCommand() {}
func (EnterSearchMode) isCommand()  {}

func (InsertChar) isCommand()        {}
func (InsertNewline) isCommand()     {}
func (InsertIndent) isCommand()      {}
func (DeleteCurrentChar) isCommand() {}
func (DeleteLeftChar) isCommand()    {}
func (OpenLineBelow) isCommand()     {}
func (SetMark) isCommand()           {}
func (CutRegion) isCommand()         {}
func (Paste) isCommand()             {}

func (RepeatSearchForward) isCommand()  {}
func (RepeatSearchBackward) isCommand() {}

func (Undo) isCommand() {}
func (Redo) isCommand() {}

func (SaveFile) isCommand()  {}
func (Quit) isCommand()      {}
func (ForceQuit) isCommand() {}

func (CmdlineInsert) isCommand()      {}
func (CmdlineBackspace) isCommand()   {}
func (CmdlineCursorLeft) isCommand()  {}
func (CmdlineCursorRight) isCommand() {}
func (CmdlineHome) isCommand()        {}
func (CmdlineEnd) isCommand()         {}
func (CmdlineAccept) isCommand()      {}
func (CmdlineCancel) isCommand()      {}
