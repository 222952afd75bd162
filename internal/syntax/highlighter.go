package syntax

// Highlighter tags rendered row bytes according to its active ruleset.
// A nil ruleset tags everything TagNormal.
type Highlighter struct {
	rules *Ruleset
}

// NewHighlighter creates a highlighter for the given ruleset.
// rules may be nil.
func NewHighlighter(rules *Ruleset) *Highlighter {
	return &Highlighter{rules: rules}
}

// Ruleset returns the active ruleset, or nil when none is set.
func (h *Highlighter) Ruleset() *Ruleset {
	return h.rules
}

// SetRuleset switches the active ruleset. Callers re-highlight existing
// rows themselves.
func (h *Highlighter) SetRuleset(rules *Ruleset) {
	h.rules = rules
}

// HighlightLine computes one tag per rendered byte. dst is reused when it
// has capacity; the returned slice always has len(rendered) entries.
//
// The scan keeps two pieces of state: the quote character of an open
// string and whether the previous byte was a separator. A line-comment
// marker outside a string tags the rest of the row and stops the scan.
func (h *Highlighter) HighlightLine(rendered []byte, dst []Tag) []Tag {
	n := len(rendered)
	if cap(dst) < n {
		dst = make([]Tag, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = TagNormal
	}

	rules := h.rules
	if rules == nil {
		return dst
	}

	prevSep := true
	var inString byte
	i := 0

	for i < n {
		c := rendered[i]
		prevTag := TagNormal
		if i > 0 {
			prevTag = dst[i-1]
		}

		if rules.LineComment != "" && inString == 0 && hasPrefixAt(rendered, i, rules.LineComment) {
			for j := i; j < n; j++ {
				dst[j] = TagComment
			}
			break
		}

		if rules.Strings {
			if inString != 0 {
				dst[i] = TagString
				if c == '\\' && i+1 < n {
					dst[i+1] = TagString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				dst[i] = TagString
				i++
				continue
			}
		}

		if rules.Numbers {
			if (isDigit(c) && (prevSep || prevTag == TagNumber)) || (c == '.' && prevTag == TagNumber) {
				dst[i] = TagNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			next, found := matchWord(rendered, i, rules.Keywords, dst, TagKeyword)
			if !found {
				next, found = matchWord(rendered, i, rules.Types, dst, TagType)
			}
			if !found {
				next, found = matchWord(rendered, i, rules.Consts, dst, TagConst)
			}
			if found {
				i = next
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return dst
}

// matchWord tags the longest word from words anchored at i whose
// following byte is a separator (end of row counts). It returns the scan
// position after the match and whether a word matched.
func matchWord(rendered []byte, i int, words []string, dst []Tag, tag Tag) (int, bool) {
	best := 0
	for _, w := range words {
		wl := len(w)
		if wl == 0 || wl < best || i+wl > len(rendered) {
			continue
		}
		if string(rendered[i:i+wl]) != w {
			continue
		}
		if i+wl < len(rendered) && !IsSeparator(rendered[i+wl]) {
			continue
		}
		best = wl
	}
	if best == 0 {
		return i, false
	}
	for j := i; j < i+best; j++ {
		dst[j] = tag
	}
	return i + best, true
}

func hasPrefixAt(b []byte, i int, prefix string) bool {
	if i+len(prefix) > len(b) {
		return false
	}
	return string(b[i:i+len(prefix)]) == prefix
}
