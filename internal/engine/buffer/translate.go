package buffer

// Translator converts between logical columns, which index a row's raw
// bytes, and rendered columns, which index the tab-expanded projection.
// The zero value uses DefaultTabStop.
type Translator struct {
	tabStop int
}

// NewTranslator returns a Translator for the given tab stop. Non-positive
// values fall back to DefaultTabStop.
func NewTranslator(tabStop int) Translator {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return Translator{tabStop: tabStop}
}

// TabStop returns the tab stop width.
func (t Translator) TabStop() int {
	if t.tabStop <= 0 {
		return DefaultTabStop
	}
	return t.tabStop
}

// ToRendered maps a logical column to its rendered column by walking the
// raw bytes before cx and widening each tab to the next multiple of the
// tab stop. A nil row maps to 0; cx beyond the row end is clamped.
func (t Translator) ToRendered(row *Row, cx int) int {
	if row == nil {
		return 0
	}
	ts := t.TabStop()
	if cx > len(row.raw) {
		cx = len(row.raw)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		if row.raw[i] == '\t' {
			rx += (ts - 1) - rx%ts
		}
		rx++
	}
	return rx
}

// ToLogical maps a rendered column back to the logical column whose
// rendered position covers it. A column inside a tab's padding maps to the
// tab itself, so the inverse is exact for every rendered byte. A nil row
// maps to 0; rx at or past the rendered end maps to the row length.
func (t Translator) ToLogical(row *Row, rx int) int {
	if row == nil {
		return 0
	}
	ts := t.TabStop()
	cur := 0
	for cx := 0; cx < len(row.raw); cx++ {
		if row.raw[cx] == '\t' {
			cur += (ts - 1) - cur%ts
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(row.raw)
}
