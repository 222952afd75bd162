// Package syntax provides per-row syntax highlighting driven by
// per-language rulesets. Highlighting operates on a row's rendered
// (tab-expanded) bytes and resets at every row boundary; strings and
// comments do not carry over between rows.
package syntax

// Tag classifies one rendered byte for display.
type Tag uint8

const (
	TagNormal Tag = iota
	TagNumber
	TagString
	TagComment
	TagKeyword
	TagType
	TagConst
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagNormal:
		return "normal"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagComment:
		return "comment"
	case TagKeyword:
		return "keyword"
	case TagType:
		return "type"
	case TagConst:
		return "const"
	default:
		return "unknown"
	}
}

// separators delimit keywords and decide where numbers may start.
const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c ends a word. Whitespace, NUL and a fixed
// punctuation set count; callers treat end-of-row as a separator too.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	for i := 0; i < len(separators); i++ {
		if separators[i] == c {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
