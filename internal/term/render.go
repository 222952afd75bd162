package term

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input/mode"
	"github.com/dshills/ked/internal/syntax"
)

const welcome = "ked editor -- a small modal editor"

// Styles matching the editor's palette: magenta literals, grey
// comments, bold blue-purple keywords and types, blue search span.
var (
	styleDefault = tcell.StyleDefault
	styleLiteral = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleComment = tcell.StyleDefault.Foreground(tcell.PaletteColor(248))
	styleKeyword = tcell.StyleDefault.Foreground(tcell.PaletteColor(63)).Bold(true)

	styleStatusNormal = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorBlack).Bold(true)
	styleStatusInsert = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack).Bold(true)
	styleError        = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorSilver)
)

// Renderer draws engine snapshots onto the screen. It owns the scroll
// offsets, which persist between frames so the viewport stays put until
// the cursor or a search match pushes it.
type Renderer struct {
	scr tcell.Screen

	rowOff int
	colOff int
	cmdOff int

	// Text row count of the last frame, fed back to the engine so page
	// motion knows the window height.
	rows int
}

// NewRenderer creates a renderer drawing to the given screen.
func NewRenderer(s *Screen) *Renderer {
	return &Renderer{scr: s.tc}
}

// Viewport returns the first visible row and the text row count of the
// last frame.
func (r *Renderer) Viewport() (top, rows int) {
	return r.rowOff, r.rows
}

// Draw renders one frame: text rows, status bar, and message line.
func (r *Renderer) Draw(snap engine.Snapshot) {
	width, height := r.scr.Size()
	textRows := height - 2
	if textRows < 0 {
		textRows = 0
	}
	r.rows = textRows

	// A search match scrolls its end into view even while the prompt
	// is open; the cursor only drags the viewport outside the prompt.
	if snap.ScrollTo != nil {
		r.rowOff = follow(r.rowOff, snap.ScrollTo.Y, textRows-5)
		r.colOff = follow(r.colOff, snap.ScrollTo.X, width-5)
	}
	if !snap.Mode.HasLineEditor() {
		r.rowOff = follow(r.rowOff, snap.CursorY, textRows-5)
		r.colOff = follow(r.colOff, snap.CursorX, width-5)
	}
	r.cmdOff = follow(r.cmdOff, snap.CmdlineX, width-1)

	r.scr.Clear()
	r.drawRows(snap, width, textRows)
	if height >= 2 {
		r.drawStatusBar(snap, width, textRows)
		r.drawMessageLine(snap, width, textRows+1)
	}

	if snap.Mode.HasLineEditor() {
		r.scr.ShowCursor(snap.CmdlineX-r.cmdOff+1, textRows+1)
	} else {
		r.scr.ShowCursor(snap.CursorX-r.colOff, snap.CursorY-r.rowOff)
	}
	r.scr.Show()
}

// follow slides an offset so pos stays inside a band of the given
// width, scrolling only when the position leaves it.
func follow(off, pos, band int) int {
	if band < 1 {
		band = 1
	}
	if pos < off {
		off = pos
	}
	if pos >= off+band {
		off = pos - band + 1
	}
	return off
}

func (r *Renderer) drawRows(snap engine.Snapshot, width, textRows int) {
	for y := 0; y < textRows; y++ {
		filerow := y + r.rowOff
		if filerow >= len(snap.Rows) {
			if len(snap.Rows) == 0 && y == textRows/3 {
				r.drawWelcome(y, width)
			} else {
				r.scr.SetContent(0, y, '~', nil, styleDefault)
			}
			continue
		}
		r.drawRow(snap, filerow, y, width)
	}
}

func (r *Renderer) drawWelcome(y, width int) {
	msg := welcome
	if len(msg) > width {
		msg = msg[:width]
	}
	x := 0
	if pad := (width - len(msg)) / 2; pad > 0 {
		r.scr.SetContent(0, y, '~', nil, styleDefault)
		x = pad
	}
	for _, c := range msg {
		if x >= width {
			break
		}
		r.scr.SetContent(x, y, c, nil, styleDefault)
		x++
	}
}

// drawRow paints one buffer row from the column offset. Columns are
// byte positions in the rendered row, matching the engine's rendered
// coordinates.
func (r *Renderer) drawRow(snap engine.Snapshot, filerow, y, width int) {
	row := snap.Rows[filerow]
	i := r.colOff
	x := 0
	for i < len(row.Rendered) && x < width {
		b := row.Rendered[i]
		if b < 32 || b == 127 {
			sym := '?'
			if b <= 26 {
				sym = rune('@' + b)
			}
			r.scr.SetContent(x, y, sym, nil, styleDefault.Reverse(true))
			i++
			x++
			continue
		}

		c, size := utf8.DecodeRune(row.Rendered[i:])
		style := tagStyle(tagAt(row.Tags, i))
		if spanContains(snap.Span, filerow, i) {
			style = style.Background(tcell.ColorNavy)
		}
		r.scr.SetContent(x, y, c, nil, style)
		i += size
		x++
	}
}

func tagAt(tags []syntax.Tag, i int) syntax.Tag {
	if i < len(tags) {
		return tags[i]
	}
	return syntax.TagNormal
}

// tagStyle maps a highlight tag to its screen style.
func tagStyle(tag syntax.Tag) tcell.Style {
	switch tag {
	case syntax.TagNumber, syntax.TagString, syntax.TagConst:
		return styleLiteral
	case syntax.TagComment:
		return styleComment
	case syntax.TagKeyword, syntax.TagType:
		return styleKeyword
	default:
		return styleDefault
	}
}

// spanContains reports whether the rendered position (y, x) lies inside
// the span. The end is exclusive.
func spanContains(s engine.Span, y, x int) bool {
	if s.Empty() {
		return false
	}
	if y < s.StartY || y > s.EndY {
		return false
	}
	if y == s.StartY && x < s.StartX {
		return false
	}
	if y == s.EndY && x >= s.EndX {
		return false
	}
	return true
}

func (r *Renderer) drawStatusBar(snap engine.Snapshot, width, y int) {
	style := styleStatusNormal
	if snap.Mode == mode.Insert {
		style = styleStatusInsert
	}
	for x := 0; x < width; x++ {
		r.scr.SetContent(x, y, ' ', nil, style)
	}

	left := statusLeft(snap)
	right := statusRight(snap)
	drawText(r.scr, 0, y, style, left, width)
	if len(left)+len(right) <= width {
		drawText(r.scr, width-len(right), y, style, right, len(right))
	}
}

// statusLeft is the dirty marker, mode letter, and document name.
func statusLeft(snap engine.Snapshot) string {
	dirty := '-'
	if snap.Dirty {
		dirty = '*'
	}
	m := 'N'
	if snap.Mode == mode.Insert {
		m = 'I'
	}
	name := snap.Path
	if name == "" {
		name = "[No name]"
	}
	return fmt.Sprintf("[%c%c] %s", dirty, m, name)
}

// statusRight is the language name and cursor row over row count.
func statusRight(snap engine.Snapshot) string {
	lang := snap.Language
	if lang == "" {
		lang = "none"
	}
	return fmt.Sprintf("%s %d/%d ", lang, snap.CursorY+1, len(snap.Rows))
}

func (r *Renderer) drawMessageLine(snap engine.Snapshot, width, y int) {
	if snap.Mode.HasLineEditor() {
		prompt := ':'
		if snap.Mode == mode.Search {
			prompt = '/'
		}
		r.scr.SetContent(0, y, prompt, nil, styleDefault)
		line := snap.Cmdline
		if r.cmdOff < len(line) {
			drawText(r.scr, 1, y, styleDefault, line[r.cmdOff:], width-1)
		}
		return
	}

	if snap.Status == "" {
		return
	}
	style := styleDefault
	if snap.StatusKind == engine.StatusError {
		style = styleError
	}
	drawText(r.scr, 0, y, style, snap.Status, width)
}

// drawText paints a string left to right, clipped to max cells.
func drawText(scr tcell.Screen, x, y int, style tcell.Style, text string, max int) {
	n := 0
	for _, c := range text {
		if n >= max {
			break
		}
		scr.SetContent(x+n, y, c, nil, style)
		n++
	}
}
