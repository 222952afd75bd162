package syntax

import "testing"

func tagsOf(t *testing.T, rules *Ruleset, line string) []Tag {
	t.Helper()
	h := NewHighlighter(rules)
	return h.HighlightLine([]byte(line), nil)
}

func TestHighlightKeywordLine(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "return x;")

	for i := 0; i < 6; i++ {
		if tags[i] != TagKeyword {
			t.Errorf("byte %d = %v, want keyword", i, tags[i])
		}
	}
	if tags[6] != TagNormal {
		t.Errorf("space tagged %v, want normal", tags[6])
	}
	if tags[7] != TagNormal {
		t.Errorf("'x' tagged %v, want normal", tags[7])
	}
	if tags[8] != TagNormal {
		t.Errorf("';' tagged %v, want normal", tags[8])
	}
}

func TestHighlightKeywordNeedsSeparatorAfter(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "returnx")
	for i, tag := range tags {
		if tag != TagNormal {
			t.Errorf("byte %d = %v, want normal", i, tag)
		}
	}
}

func TestHighlightKeywordAtEndOfRow(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "return")
	for i, tag := range tags {
		if tag != TagKeyword {
			t.Errorf("byte %d = %v, want keyword", i, tag)
		}
	}
}

func TestHighlightKeywordNeedsSeparatorBefore(t *testing.T) {
	// "xreturn" must not tag the embedded keyword.
	tags := tagsOf(t, RulesetC(), "xreturn;")
	for i, tag := range tags {
		if tag != TagNormal {
			t.Errorf("byte %d = %v, want normal", i, tag)
		}
	}
}

func TestHighlightTypeAndConst(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "int x = NULL;")

	for i := 0; i < 3; i++ {
		if tags[i] != TagType {
			t.Errorf("byte %d = %v, want type", i, tags[i])
		}
	}
	for i := 8; i < 12; i++ {
		if tags[i] != TagConst {
			t.Errorf("byte %d = %v, want const", i, tags[i])
		}
	}
}

func TestHighlightComment(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "x = 1; // done")

	if tags[0] != TagNormal {
		t.Errorf("byte 0 = %v, want normal", tags[0])
	}
	for i := 7; i < len(tags); i++ {
		if tags[i] != TagComment {
			t.Errorf("byte %d = %v, want comment", i, tags[i])
		}
	}
}

func TestHighlightCommentMarkerInsideString(t *testing.T) {
	tags := tagsOf(t, RulesetC(), `"//x"`)
	for i, tag := range tags {
		if tag != TagString {
			t.Errorf("byte %d = %v, want string", i, tag)
		}
	}
}

func TestHighlightStringEscape(t *testing.T) {
	// The backslash escapes the quote, so the string runs to the second
	// real quote.
	line := `"a\"b" c`
	tags := tagsOf(t, RulesetC(), line)

	for i := 0; i < 6; i++ {
		if tags[i] != TagString {
			t.Errorf("byte %d = %v, want string", i, tags[i])
		}
	}
	if tags[7] != TagNormal {
		t.Errorf("'c' tagged %v, want normal", tags[7])
	}
}

func TestHighlightSingleQuoteString(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "'a' b")
	for i := 0; i < 3; i++ {
		if tags[i] != TagString {
			t.Errorf("byte %d = %v, want string", i, tags[i])
		}
	}
	if tags[4] != TagNormal {
		t.Errorf("'b' tagged %v, want normal", tags[4])
	}
}

func TestHighlightUnterminatedString(t *testing.T) {
	tags := tagsOf(t, RulesetC(), `"abc`)
	for i, tag := range tags {
		if tag != TagString {
			t.Errorf("byte %d = %v, want string", i, tag)
		}
	}
}

func TestHighlightNumbers(t *testing.T) {
	tags := tagsOf(t, RulesetC(), "x = 3.14;")

	if tags[0] != TagNormal {
		t.Errorf("'x' tagged %v, want normal", tags[0])
	}
	for i := 4; i < 8; i++ {
		if tags[i] != TagNumber {
			t.Errorf("byte %d = %v, want number", i, tags[i])
		}
	}
}

func TestHighlightDigitInsideIdentifier(t *testing.T) {
	// A digit that follows identifier characters is not a number.
	tags := tagsOf(t, RulesetC(), "x1")
	if tags[1] != TagNormal {
		t.Errorf("'1' tagged %v, want normal", tags[1])
	}
}

func TestHighlightLongestWordWins(t *testing.T) {
	rules := &Ruleset{
		Name:     "t",
		Keywords: []string{"a", "a.b"},
	}
	tags := tagsOf(t, rules, "a.b;")
	for i := 0; i < 3; i++ {
		if tags[i] != TagKeyword {
			t.Errorf("byte %d = %v, want keyword", i, tags[i])
		}
	}
}

func TestHighlightNilRuleset(t *testing.T) {
	tags := tagsOf(t, nil, "return 42 // hi")
	for i, tag := range tags {
		if tag != TagNormal {
			t.Errorf("byte %d = %v, want normal", i, tag)
		}
	}
}

func TestHighlightReusesDst(t *testing.T) {
	h := NewHighlighter(RulesetC())
	dst := make([]Tag, 0, 64)
	out := h.HighlightLine([]byte("int x;"), dst)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	if &out[:cap(out)][0] != &dst[:cap(dst)][0] {
		t.Error("dst was not reused despite sufficient capacity")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(" \t,.()+-/*=~%<>[];") {
		if !IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = false, want true", c)
		}
	}
	if !IsSeparator(0) {
		t.Error("IsSeparator(NUL) = false, want true")
	}
	for _, c := range []byte("ab1_#") {
		if IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = true, want false", c)
		}
	}
}
