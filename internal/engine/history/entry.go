package history

// Kind identifies the edit operation a journal entry records.
type Kind uint8

const (
	KindInsertChar Kind = iota
	KindInsertNewline
	KindDeleteCurrent
	KindDeleteLeft
	KindCut
	KindPaste
	KindOpenLine
)

// String returns a short name for logging.
func (k Kind) String() string {
	switch k {
	case KindInsertChar:
		return "insert-char"
	case KindInsertNewline:
		return "insert-newline"
	case KindDeleteCurrent:
		return "delete-current"
	case KindDeleteLeft:
		return "delete-left"
	case KindCut:
		return "cut"
	case KindPaste:
		return "paste"
	case KindOpenLine:
		return "open-line"
	default:
		return "unknown"
	}
}

// Entry is one recorded edit. Payload holds the text the edit inserted or
// removed ("\n" for row splits and joins, the full region for cut and
// paste). X and Y are the logical cursor position the edit applies at.
type Entry struct {
	Kind    Kind
	Payload string
	X, Y    int
}
