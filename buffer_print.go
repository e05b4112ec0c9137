package vtcore

// printRune is the printing hot path (§4.4). It applies the active
// charset translation, stamps the cell with the current template style,
// handles wide-character pairing, and advances the cursor including the
// pending-wrap deferral required by §4.4: filling the last column does
// not wrap immediately, so a cursor position report issued before the
// next printable character still sees the last column.
func (e *Emulator) printRune(r rune, width int) {
	if width <= 0 {
		// Combining marks have no cell of their own in this single-rune-
		// per-cell model; they are absorbed without advancing the cursor.
		return
	}

	if e.cursor.PendingWrap {
		e.wrapToNextLine()
	}

	buf := e.activeBuffer()
	if width == 2 && e.cursor.Col == e.cols-1 {
		// A wide character that would straddle the margin wraps whole.
		e.wrapToNextLine()
	}

	col := e.cursor.Col
	if e.modes.Is(ModeIRM) {
		// IRM: shift the cells from the cursor to the right margin right by
		// width before printing, rather than overwriting in place (§4.4).
		buf.InsertBlanks(e.cursor.Row, col, width, e.template.Style)
	}
	e.clearWideNeighbor(buf, e.cursor.Row, col)

	cell := buf.Cell(e.cursor.Row, col)
	if cell == nil {
		return
	}
	cell.Char = e.charsets.translate(r)
	cell.Style = e.template.Style
	cell.Flags = 0
	cell.Hyperlink = e.activeHyperlink
	cell.MarkDirty()

	if width == 2 {
		cell.SetFlag(CellFlagWide)
		if cont := buf.Cell(e.cursor.Row, col+1); cont != nil {
			cont.Reset(e.template.Style)
			cont.SetFlag(CellFlagWideCont)
			cont.MarkDirty()
		}
	}

	newCol := col + width
	if newCol >= e.cols {
		e.cursor.Col = e.cols - 1
		if e.modes.Is(ModeDECAWM) {
			e.cursor.PendingWrap = true
		}
	} else {
		e.cursor.Col = newCol
	}
}

// wrapToNextLine performs the deferred wrap: moves to column 0 of the
// next line (scrolling the region if needed) and marks the line just
// left as having wrapped, so LineContent-based reflow/selection logic can
// tell a wrap from an explicit newline.
func (e *Emulator) wrapToNextLine() {
	e.activeBuffer().SetWrapped(e.cursor.Row, true)
	e.cursor.PendingWrap = false
	e.cursor.Col = 0
	e.lineFeed()
}

// lineFeed moves the cursor down one row, scrolling the active scroll
// region when the cursor is already on its bottom margin (§4.4/§4.5).
func (e *Emulator) lineFeed() {
	if e.cursor.Row == e.scrollRegion.Bottom {
		e.activeBuffer().ScrollUp(e.scrollRegion.Top, e.scrollRegion.Bottom+1, 1, e.template.Style)
		return
	}
	if e.cursor.Row < e.rows-1 {
		e.cursor.Row++
	}
}

// reverseLineFeed moves the cursor up one row, scrolling down when
// already on the region's top margin (RI, ESC M).
func (e *Emulator) reverseLineFeed() {
	if e.cursor.Row == e.scrollRegion.Top {
		e.activeBuffer().ScrollDown(e.scrollRegion.Top, e.scrollRegion.Bottom+1, 1, e.template.Style)
		return
	}
	if e.cursor.Row > 0 {
		e.cursor.Row--
	}
}

// clearWideNeighbor repairs the wide_cont invariant before col is
// overwritten: if col was either half of a wide pair, the other half is
// reset to a blank cell rather than left dangling (§4.4 "overwriting
// either half of a wide character clears both").
func (e *Emulator) clearWideNeighbor(buf *Buffer, row, col int) {
	cell := buf.Cell(row, col)
	if cell == nil {
		return
	}
	switch {
	case cell.IsWide():
		if next := buf.Cell(row, col+1); next != nil && next.IsWideCont() {
			next.Reset(e.template.Style)
			next.MarkDirty()
		}
	case cell.IsWideCont():
		if prev := buf.Cell(row, col-1); prev != nil && prev.IsWide() {
			prev.Reset(e.template.Style)
			prev.MarkDirty()
		}
	}
}
