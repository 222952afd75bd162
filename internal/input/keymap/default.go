package keymap

import "github.com/dshills/ked/internal/engine"

// DefaultNormalBindings returns the normal mode binding table.
func DefaultNormalBindings() []Binding {
	return []Binding{
		// Movement - basic
		{Keys: "h", Command: engine.MoveLeft{}, Description: "Move left", Category: "Movement"},
		{Keys: "j", Command: engine.MoveDown{}, Description: "Move down", Category: "Movement"},
		{Keys: "k", Command: engine.MoveUp{}, Description: "Move up", Category: "Movement"},
		{Keys: "l", Command: engine.MoveRight{}, Description: "Move right", Category: "Movement"},
		{Keys: "Left", Command: engine.MoveLeft{}, Description: "Move left", Category: "Movement"},
		{Keys: "Down", Command: engine.MoveDown{}, Description: "Move down", Category: "Movement"},
		{Keys: "Up", Command: engine.MoveUp{}, Description: "Move up", Category: "Movement"},
		{Keys: "Right", Command: engine.MoveRight{}, Description: "Move right", Category: "Movement"},

		// Movement - line
		{Keys: "a", Command: engine.MoveLineBegin{}, Description: "Move to line start", Category: "Movement"},
		{Keys: ";", Command: engine.MoveLineEnd{}, Description: "Move to line end", Category: "Movement"},

		// Movement - words and paragraphs
		{Keys: "o", Command: engine.MoveWordForward{}, Description: "Move past next word", Category: "Movement"},
		{Keys: "n", Command: engine.MoveWordBackward{}, Description: "Move before previous word", Category: "Movement"},
		{Keys: "m", Command: engine.MoveNextPara{}, Description: "Move to next paragraph", Category: "Movement"},
		{Keys: "u", Command: engine.MovePrevPara{}, Description: "Move to previous paragraph", Category: "Movement"},

		// Movement - document
		{Keys: "g g", Command: engine.MoveFirstRow{}, Description: "Go to first row", Category: "Movement"},
		{Keys: "G", Command: engine.MoveLastRow{}, Description: "Go to last row", Category: "Movement"},
		{Keys: "U", Command: engine.MovePageUp{}, Description: "Move up one page", Category: "Movement"},
		{Keys: "M", Command: engine.MovePageDown{}, Description: "Move down one page", Category: "Movement"},

		// Editing
		{Keys: "i", Command: engine.EnterInsertMode{}, Description: "Enter insert mode", Category: "Editing"},
		{Keys: ",", Command: engine.OpenLineBelow{}, Description: "Open a row below", Category: "Editing"},
		{Keys: "w", Command: engine.DeleteCurrentChar{}, Description: "Delete character under cursor", Category: "Editing"},
		{Keys: "e", Command: engine.Undo{}, Description: "Undo last change", Category: "Editing"},
		{Keys: "E", Command: engine.Redo{}, Description: "Redo undone change", Category: "Editing"},

		// Region
		{Keys: "d", Command: engine.SetMark{}, Description: "Set mark at cursor", Category: "Region"},
		{Keys: "f", Command: engine.CutRegion{}, Description: "Cut mark-to-cursor region", Category: "Region"},
		{Keys: "c", Command: engine.Paste{}, Description: "Paste clipboard at cursor", Category: "Region"},

		// Search
		{Keys: "/", Command: engine.EnterSearchMode{}, Description: "Search forward", Category: "Search"},
		{Keys: "b", Command: engine.RepeatSearchForward{}, Description: "Repeat search forward", Category: "Search"},
		{Keys: "B", Command: engine.RepeatSearchBackward{}, Description: "Repeat search backward", Category: "Search"},

		// Session
		{Keys: "A-m", Command: engine.EnterCommandMode{}, Description: "Enter command mode", Category: "Session"},
		{Keys: "A-s", Command: engine.SaveFile{}, Description: "Save file", Category: "Session"},
		{Keys: "`", Command: engine.Quit{}, Description: "Quit", Category: "Session"},
	}
}

// DefaultInsertBindings returns the insert mode binding table. Keys not
// listed here insert themselves when printable.
func DefaultInsertBindings() []Binding {
	return []Binding{
		{Keys: "Escape", Command: engine.EnterNormalMode{}, Description: "Back to normal mode", Category: "Mode"},
		{Keys: "Enter", Command: engine.InsertNewline{}, Description: "Split row at cursor", Category: "Editing"},
		{Keys: "Tab", Command: engine.InsertIndent{}, Description: "Insert one indent level", Category: "Editing"},
		{Keys: "Backspace", Command: engine.DeleteLeftChar{}, Description: "Delete character before cursor", Category: "Editing"},
		{Keys: "Left", Command: engine.MoveLeft{}, Description: "Move left", Category: "Movement"},
		{Keys: "Down", Command: engine.MoveDown{}, Description: "Move down", Category: "Movement"},
		{Keys: "Up", Command: engine.MoveUp{}, Description: "Move up", Category: "Movement"},
		{Keys: "Right", Command: engine.MoveRight{}, Description: "Move right", Category: "Movement"},
	}
}

// DefaultLineEditorBindings returns the binding table shared by the
// command and search prompts. Keys not listed here insert themselves
// when printable and are dropped otherwise.
func DefaultLineEditorBindings() []Binding {
	return []Binding{
		{Keys: "Enter", Command: engine.CmdlineAccept{}, Description: "Run the line", Category: "Prompt"},
		{Keys: "Escape", Command: engine.CmdlineCancel{}, Description: "Abandon the line", Category: "Prompt"},
		{Keys: "Backspace", Command: engine.CmdlineBackspace{}, Description: "Erase before cursor", Category: "Prompt"},
		{Keys: "C-h", Command: engine.CmdlineCursorLeft{}, Description: "Move line cursor left", Category: "Prompt"},
		{Keys: "C-l", Command: engine.CmdlineCursorRight{}, Description: "Move line cursor right", Category: "Prompt"},
		{Keys: "A-Left", Command: engine.CmdlineHome{}, Description: "Move to line start", Category: "Prompt"},
		{Keys: "A-Right", Command: engine.CmdlineEnd{}, Description: "Move to line end", Category: "Prompt"},
	}
}
