package buffer

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/ked/internal/syntax"
)

func TestRenderExpandsTabs(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"\tmain", "    main"},
		{"a\tb", "a   b"},
		{"ab\tc", "ab  c"},
		{"abc\td", "abc d"},
		{"abcd\te", "abcd    e"},
		{"\t\t", "        "},
		{"no tabs", "no tabs"},
		{"", ""},
	}

	for _, tt := range tests {
		b := New()
		row, err := b.InsertRow(0, tt.raw)
		if err != nil {
			t.Fatalf("InsertRow(%q): %v", tt.raw, err)
		}
		if got := string(row.Rendered()); got != tt.want {
			t.Errorf("render %q = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRenderCustomTabStop(t *testing.T) {
	b := New(WithTabStop(8))
	row, _ := b.InsertRow(0, "\tx")
	if got := string(row.Rendered()); got != "        x" {
		t.Errorf("render with tab stop 8 = %q", got)
	}
}

func TestInsertRowOutOfRange(t *testing.T) {
	b := New()
	b.InsertRow(0, "only")

	if _, err := b.InsertRow(-1, "x"); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("InsertRow(-1) err = %v, want ErrRowOutOfRange", err)
	}
	if _, err := b.InsertRow(2, "x"); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("InsertRow(2) err = %v, want ErrRowOutOfRange", err)
	}
	if b.NumRows() != 1 {
		t.Errorf("failed inserts changed row count to %d", b.NumRows())
	}

	// One past the last row appends.
	if _, err := b.InsertRow(1, "appended"); err != nil {
		t.Errorf("InsertRow(NumRows()) err = %v", err)
	}
	if got := b.Row(1).String(); got != "appended" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestDeleteRowReturnsText(t *testing.T) {
	b := New()
	b.LoadLines([]string{"first", "second", "third"})

	if got := b.DeleteRow(1); got != "second" {
		t.Errorf("DeleteRow(1) = %q, want %q", got, "second")
	}
	if b.NumRows() != 2 || b.Row(1).String() != "third" {
		t.Errorf("rows after delete: %d, row 1 = %q", b.NumRows(), b.Row(1).String())
	}
	if got := b.DeleteRow(5); got != "" {
		t.Errorf("DeleteRow out of range = %q, want empty", got)
	}
	if got := b.DeleteRow(-1); got != "" {
		t.Errorf("DeleteRow(-1) = %q, want empty", got)
	}
}

func TestRowInsertCharClamps(t *testing.T) {
	b := New()
	row, _ := b.InsertRow(0, "ab")

	b.RowInsertChar(row, 1, 'X')
	if got := row.String(); got != "aXb" {
		t.Errorf("insert mid = %q", got)
	}
	b.RowInsertChar(row, 99, 'Y')
	if got := row.String(); got != "aXbY" {
		t.Errorf("insert past end = %q", got)
	}
	b.RowInsertChar(row, -1, 'Z')
	if got := row.String(); got != "aXbYZ" {
		t.Errorf("insert negative = %q", got)
	}

	b.RowInsertChar(nil, 0, 'q')
}

func TestRowInsertText(t *testing.T) {
	b := New()
	row, _ := b.InsertRow(0, "int ;")

	b.RowInsertText(row, 4, "x = 1")
	if got := row.String(); got != "int x = 1;" {
		t.Errorf("RowInsertText = %q", got)
	}
}

func TestRowDeleteRange(t *testing.T) {
	b := New()
	row, _ := b.InsertRow(0, "int x = 1;")

	if got := b.RowDeleteRange(row, 4, 5); got != "x = 1" {
		t.Errorf("RowDeleteRange = %q, want %q", got, "x = 1")
	}
	if got := row.String(); got != "int ;" {
		t.Errorf("row after delete = %q, want %q", got, "int ;")
	}

	if got := b.RowDeleteRange(row, 0, 0); got != "" {
		t.Errorf("zero-length range = %q, want empty", got)
	}
	if got := b.RowDeleteRange(row, 3, 99); got != "" {
		t.Errorf("overlong range = %q, want empty", got)
	}
	if got := b.RowDeleteRange(row, -1, 2); got != "" {
		t.Errorf("negative start = %q, want empty", got)
	}
	if got := row.String(); got != "int ;" {
		t.Errorf("invalid ranges modified row: %q", got)
	}
}

func TestRowAppend(t *testing.T) {
	b := New()
	b.LoadLines([]string{"hello"})
	row := b.Row(0)

	b.RowAppend(row, " world")
	if got := row.String(); got != "hello world" {
		t.Errorf("RowAppend = %q", got)
	}
	if row.RenderedLen() != 11 {
		t.Errorf("rendered not refreshed: len %d", row.RenderedLen())
	}
}

func TestContentsTrailingNewline(t *testing.T) {
	b := New()
	if got := b.Contents(); got != "" {
		t.Errorf("empty buffer contents = %q", got)
	}

	b.LoadLines([]string{"a", "b"})
	if got := b.Contents(); got != "a\nb\n" {
		t.Errorf("contents = %q, want %q", got, "a\nb\n")
	}
}

func TestEnsureNonEmptyAndCollapse(t *testing.T) {
	b := New()

	b.EnsureNonEmpty()
	if b.NumRows() != 1 || b.Row(0).Len() != 0 {
		t.Fatalf("EnsureNonEmpty: %d rows", b.NumRows())
	}
	b.EnsureNonEmpty()
	if b.NumRows() != 1 {
		t.Errorf("EnsureNonEmpty on non-empty added a row")
	}

	if !b.CollapseIfEmpty(0) {
		t.Error("CollapseIfEmpty on single empty row = false")
	}
	if b.NumRows() != 0 {
		t.Errorf("rows after collapse = %d", b.NumRows())
	}

	b.LoadLines([]string{"text"})
	if b.CollapseIfEmpty(0) {
		t.Error("CollapseIfEmpty removed a non-empty row")
	}

	b.LoadLines([]string{"", ""})
	if b.CollapseIfEmpty(0) {
		t.Error("CollapseIfEmpty fired with two rows")
	}
}

func TestDirtyTracking(t *testing.T) {
	b := New()
	if b.Dirty() {
		t.Error("new buffer is dirty")
	}

	b.InsertRow(0, "x")
	if !b.Dirty() {
		t.Error("InsertRow did not mark dirty")
	}

	b.ClearDirty()
	b.RowInsertChar(b.Row(0), 0, 'y')
	if !b.Dirty() {
		t.Error("RowInsertChar did not mark dirty")
	}

	b.ClearDirty()
	b.DeleteRow(0)
	if !b.Dirty() {
		t.Error("DeleteRow did not mark dirty")
	}

	b.LoadLines([]string{"a", "b"})
	if b.Dirty() {
		t.Error("LoadLines left buffer dirty")
	}
}

func TestSetRulesetRehighlights(t *testing.T) {
	b := New()
	b.LoadLines([]string{"return 1;"})
	row := b.Row(0)

	for i, tag := range row.Tags() {
		if tag != syntax.TagNormal {
			t.Fatalf("tag %d = %v before any ruleset", i, tag)
		}
	}

	b.SetRuleset(syntax.RulesetC())
	if got := row.Tags()[0]; got != syntax.TagKeyword {
		t.Errorf("tag 0 after SetRuleset = %v, want keyword", got)
	}
	if got := row.Tags()[7]; got != syntax.TagNumber {
		t.Errorf("tag 7 after SetRuleset = %v, want number", got)
	}
	if b.Dirty() {
		t.Error("SetRuleset marked the buffer dirty")
	}
}

func TestHighlightLengthInvariant(t *testing.T) {
	b := New(WithRuleset(syntax.RulesetC()))
	b.LoadLines([]string{"int x = 1; // note", "\tif (x) return;"})

	check := func(step string) {
		t.Helper()
		for i := 0; i < b.NumRows(); i++ {
			row := b.Row(i)
			if len(row.Tags()) != row.RenderedLen() {
				t.Fatalf("%s: row %d tags %d != rendered %d", step, i, len(row.Tags()), row.RenderedLen())
			}
		}
	}

	check("load")
	b.RowInsertChar(b.Row(1), 0, '\t')
	check("insert tab")
	b.RowDeleteRange(b.Row(0), 0, 4)
	check("delete range")
	b.RowAppend(b.Row(0), " /* more */")
	check("append")
	b.TrimTrailingWhitespace()
	check("trim")
	b.SetRuleset(nil)
	check("ruleset off")
}

func TestHighlightLengthUnderRandomEdits(t *testing.T) {
	alphabet := []byte("ab\t 1;/\"x")

	rapid.Check(t, func(rt *rapid.T) {
		b := New(WithRuleset(syntax.RulesetC()))
		b.LoadLines([]string{"int x = 1;"})

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for s := 0; s < steps; s++ {
			switch rapid.IntRange(0, 5).Draw(rt, "op") {
			case 0:
				at := rapid.IntRange(0, b.NumRows()).Draw(rt, "insertAt")
				n := rapid.IntRange(0, 6).Draw(rt, "insertLen")
				text := rapid.SliceOfN(rapid.SampledFrom(alphabet), n, n).Draw(rt, "insertText")
				if _, err := b.InsertRow(at, string(text)); err != nil {
					rt.Fatalf("InsertRow(%d): %v", at, err)
				}
			case 1:
				if b.NumRows() > 0 {
					b.DeleteRow(rapid.IntRange(0, b.NumRows()-1).Draw(rt, "deleteAt"))
				}
			case 2:
				if b.NumRows() > 0 {
					row := b.Row(rapid.IntRange(0, b.NumRows()-1).Draw(rt, "charRow"))
					at := rapid.IntRange(0, row.Len()).Draw(rt, "charAt")
					ch := rapid.SampledFrom(alphabet).Draw(rt, "ch")
					b.RowInsertChar(row, at, ch)
				}
			case 3:
				if b.NumRows() > 0 {
					row := b.Row(rapid.IntRange(0, b.NumRows()-1).Draw(rt, "rangeRow"))
					at := rapid.IntRange(0, row.Len()).Draw(rt, "rangeAt")
					n := rapid.IntRange(0, row.Len()-at).Draw(rt, "rangeLen")
					b.RowDeleteRange(row, at, n)
				}
			case 4:
				if b.NumRows() > 0 {
					row := b.Row(rapid.IntRange(0, b.NumRows()-1).Draw(rt, "appendRow"))
					n := rapid.IntRange(0, 6).Draw(rt, "appendLen")
					text := rapid.SliceOfN(rapid.SampledFrom(alphabet), n, n).Draw(rt, "appendText")
					b.RowAppend(row, string(text))
				}
			case 5:
				b.TrimTrailingWhitespace()
			}

			for i := 0; i < b.NumRows(); i++ {
				row := b.Row(i)
				if len(row.Tags()) != row.RenderedLen() {
					rt.Fatalf("step %d: row %d tags %d != rendered %d (raw %q)",
						s, i, len(row.Tags()), row.RenderedLen(), row.String())
				}
			}
		}
	})
}

func TestTrimTrailingWhitespace(t *testing.T) {
	b := New()
	b.LoadLines([]string{"a  ", "b\t", "c", "  d \t "})

	b.TrimTrailingWhitespace()

	want := []string{"a", "b", "c", "  d"}
	for i, w := range want {
		if got := b.Row(i).String(); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
	if !b.Dirty() {
		t.Error("trim that changed rows did not mark dirty")
	}

	b.LoadLines([]string{"clean"})
	b.TrimTrailingWhitespace()
	if b.Dirty() {
		t.Error("trim with nothing to do marked the buffer dirty")
	}

	// The rendered projection follows the trim.
	b.LoadLines([]string{"x\t"})
	b.TrimTrailingWhitespace()
	if got := string(b.Row(0).Rendered()); got != "x" {
		t.Errorf("rendered after trim = %q", got)
	}
}

func TestIndentWidth(t *testing.T) {
	b := New()
	b.LoadLines([]string{"\t  x", "    y", "z", "\t"})

	tests := []struct {
		at   int
		want int
	}{
		{0, 6},
		{1, 4},
		{2, 0},
		{3, 4},
		{99, 0},
	}
	for _, tt := range tests {
		if got := b.IndentWidth(tt.at); got != tt.want {
			t.Errorf("IndentWidth(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestRowAccessorsNil(t *testing.T) {
	var row *Row
	if row.Len() != 0 || row.RenderedLen() != 0 {
		t.Error("nil row lengths not zero")
	}
	if row.Raw() != nil || row.Rendered() != nil || row.Tags() != nil {
		t.Error("nil row slices not nil")
	}
	if row.String() != "" {
		t.Error("nil row String not empty")
	}
	if !row.OnlyWhitespace() {
		t.Error("nil row OnlyWhitespace = false")
	}
}

func TestOnlyWhitespace(t *testing.T) {
	b := New()
	b.LoadLines([]string{"", " \t ", " x "})

	if !b.Row(0).OnlyWhitespace() {
		t.Error("empty row not whitespace-only")
	}
	if !b.Row(1).OnlyWhitespace() {
		t.Error("blank row not whitespace-only")
	}
	if b.Row(2).OnlyWhitespace() {
		t.Error("row with content reported whitespace-only")
	}
}
