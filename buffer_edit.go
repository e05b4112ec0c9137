package vtcore

// insertLines implements IL (CSI Ps L): inserts n blank lines at the
// cursor row, pushing lines below it down within the scroll region. A
// no-op outside the scroll region (§4.3 CSI table).
func (e *Emulator) insertLines(n int) {
	if !e.scrollRegion.Contains(e.cursor.Row) {
		return
	}
	e.activeBuffer().ScrollDown(e.cursor.Row, e.scrollRegion.Bottom+1, n, e.template.Style)
}

// deleteLines implements DL (CSI Ps M): deletes n lines at the cursor
// row, pulling lines below it up within the scroll region.
func (e *Emulator) deleteLines(n int) {
	if !e.scrollRegion.Contains(e.cursor.Row) {
		return
	}
	e.activeBuffer().ScrollUp(e.cursor.Row, e.scrollRegion.Bottom+1, n, e.template.Style)
}

// insertChars implements ICH (CSI Ps @).
func (e *Emulator) insertChars(n int) {
	buf := e.activeBuffer()
	e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
	buf.InsertBlanks(e.cursor.Row, e.cursor.Col, n, e.template.Style)
}

// deleteChars implements DCH (CSI Ps P).
func (e *Emulator) deleteChars(n int) {
	buf := e.activeBuffer()
	e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
	buf.DeleteChars(e.cursor.Row, e.cursor.Col, n, e.template.Style)
}

// eraseChars implements ECH (CSI Ps X).
func (e *Emulator) eraseChars(n int) {
	buf := e.activeBuffer()
	e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
	e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col+n-1)
	buf.EraseChars(e.cursor.Row, e.cursor.Col, n, e.template.Style)
}

// eraseInLine implements EL (CSI Ps K).
func (e *Emulator) eraseInLine(mode int32) {
	buf := e.activeBuffer()
	switch mode {
	case 0:
		e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
		buf.ClearRowRange(e.cursor.Row, e.cursor.Col, e.cols, e.template.Style)
	case 1:
		e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
		buf.ClearRowRange(e.cursor.Row, 0, e.cursor.Col+1, e.template.Style)
	case 2:
		buf.ClearRow(e.cursor.Row, e.template.Style)
	}
}

// eraseInDisplay implements ED (CSI Ps J). Mode 3 additionally drops
// scrollback (xterm extension).
func (e *Emulator) eraseInDisplay(mode int32) {
	buf := e.activeBuffer()
	switch mode {
	case 0:
		e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
		buf.ClearRowRange(e.cursor.Row, e.cursor.Col, e.cols, e.template.Style)
		for row := e.cursor.Row + 1; row < e.rows; row++ {
			buf.ClearRow(row, e.template.Style)
		}
	case 1:
		for row := 0; row < e.cursor.Row; row++ {
			buf.ClearRow(row, e.template.Style)
		}
		e.clearWideNeighbor(buf, e.cursor.Row, e.cursor.Col)
		buf.ClearRowRange(e.cursor.Row, 0, e.cursor.Col+1, e.template.Style)
	case 2:
		buf.ClearAll(e.template.Style)
	case 3:
		buf.ClearAll(e.template.Style)
		buf.ClearScrollback()
	}
}
