package vtcore

import "fmt"

// execCsi dispatches a completed CSI sequence (§4.3 "CSI command table").
// Unknown finals, out-of-range parameters, and private markers this
// emulator doesn't recognize are all silently ignored.
func (e *Emulator) execCsi(tok Token) {
	p := csiParams{values: tok.Params}

	if tok.Private == '?' {
		e.execCsiPrivate(tok, p)
		return
	}
	if tok.Private != 0 {
		return
	}

	switch tok.Final {
	case 'A':
		e.moveCursor(-int(p.get(0, 1)), 0, true)
	case 'B':
		e.moveCursor(int(p.get(0, 1)), 0, true)
	case 'C':
		e.moveCursor(0, int(p.get(0, 1)), true)
	case 'D':
		e.moveCursor(0, -int(p.get(0, 1)), true)
	case 'E': // CNL
		e.moveCursor(int(p.get(0, 1)), 0, true)
		e.cursor.Col = 0
	case 'F': // CPL
		e.moveCursor(-int(p.get(0, 1)), 0, true)
		e.cursor.Col = 0
	case 'G', '`': // CHA / HPA
		e.setCursorCol(int(p.get(0, 1)) - 1)
	case 'H', 'f': // CUP / HVP
		e.setCursorPos(int(p.get(0, 1))-1, int(p.get(1, 1))-1)
	case 'I': // CHT
		for i := int32(0); i < p.get(0, 1); i++ {
			e.cursor.Col = e.activeBuffer().NextTabStop(e.cursor.Col)
		}
	case 'J':
		e.eraseInDisplay(p.get(0, 0))
	case 'K':
		e.eraseInLine(p.get(0, 0))
	case 'L':
		e.insertLines(int(p.get(0, 1)))
	case 'M':
		e.deleteLines(int(p.get(0, 1)))
	case 'P':
		e.deleteChars(int(p.get(0, 1)))
	case 'S': // SU
		e.activeBuffer().ScrollUp(e.scrollRegion.Top, e.scrollRegion.Bottom+1, int(p.get(0, 1)), e.template.Style)
	case 'T': // SD
		e.activeBuffer().ScrollDown(e.scrollRegion.Top, e.scrollRegion.Bottom+1, int(p.get(0, 1)), e.template.Style)
	case 'X':
		e.eraseChars(int(p.get(0, 1)))
	case 'Z': // CBT
		for i := int32(0); i < p.get(0, 1); i++ {
			e.cursor.Col = e.activeBuffer().PrevTabStop(e.cursor.Col)
		}
	case '@':
		e.insertChars(int(p.get(0, 1)))
	case 'd': // VPA
		e.setCursorRow(int(p.get(0, 1)) - 1)
	case 'm':
		e.applySgr(tok, p)
	case 'n':
		e.execDsr(p)
	case 'r': // DECSTBM
		e.setScrollRegion(p)
	case 's': // ANSI.SYS save cursor
		e.saveCursor()
	case 'u': // ANSI.SYS restore cursor
		e.restoreCursor()
	case 'c': // DA
		e.respond([]byte("\x1b[?62;22c"))
	case 't': // XTWINOPS: only the title-stack subset is implemented
		switch p.get(0, 0) {
		case 22:
			e.cfg.title.PushTitle()
		case 23:
			e.cfg.title.PopTitle()
		}
	case 'q':
		if len(tok.Intermediates) == 1 && tok.Intermediates[0] == ' ' {
			e.setCursorStyle(p.get(0, 0))
		}
	case 'h', 'l': // SM / RM
		set := tok.Final == 'h'
		for _, v := range p.values {
			e.setPublicMode(v, set)
		}
	}
}

// execCsiPrivate dispatches CSI ? Pm h/l (DECSET/DECRST) and the handful
// of other '?'-prefixed sequences this emulator recognizes.
func (e *Emulator) execCsiPrivate(tok Token, p csiParams) {
	switch tok.Final {
	case 'h', 'l':
		set := tok.Final == 'h'
		for _, v := range p.values {
			e.setPrivateMode(v, set)
		}
	}
}

func (e *Emulator) setPublicMode(v int32, set bool) {
	mode, ok := publicMode(v)
	if !ok {
		return
	}
	e.modes.Set(mode, set)
}

func (e *Emulator) setPrivateMode(v int32, set bool) {
	mode, ok := privateMode(v)
	if !ok {
		return
	}
	switch mode {
	case ModeDECOM:
		e.modes.Set(mode, set)
		e.homeCursor()
	case ModeAltScreen:
		e.setAltScreen(set, true)
	case ModeAltScreen47, ModeAltScreen1047:
		e.setAltScreen(set, false)
	default:
		e.modes.Set(mode, set)
	}
}

// setAltScreen switches the active buffer. saveRestoreCursor mirrors the
// distinction xterm makes between mode 1049 (saves/restores the cursor and
// clears the alternate screen on entry) and modes 47/1047 (switches only).
func (e *Emulator) setAltScreen(enable, saveRestoreCursor bool) {
	if enable == e.usingAlt {
		return
	}
	if enable {
		if saveRestoreCursor {
			e.saveCursor()
			e.alternate.ClearAll(DefaultStyle)
		}
		e.usingAlt = true
	} else {
		e.usingAlt = false
		if saveRestoreCursor {
			e.restoreCursor()
		}
	}
}

func (e *Emulator) homeCursor() {
	if e.modes.Is(ModeDECOM) {
		e.cursor.Row, e.cursor.Col = e.scrollRegion.Top, 0
	} else {
		e.cursor.Row, e.cursor.Col = 0, 0
	}
	e.cursor.PendingWrap = false
}

// moveCursor applies a relative move, clamped to the buffer (and, for the
// vertical component when clampToRegion is true, to the scroll region).
func (e *Emulator) moveCursor(dRow, dCol int, clampToRegion bool) {
	row := e.cursor.Row + dRow
	col := e.cursor.Col + dCol

	lo, hi := 0, e.rows-1
	if clampToRegion && e.scrollRegion.Contains(e.cursor.Row) {
		lo, hi = e.scrollRegion.Top, e.scrollRegion.Bottom
	}
	if row < lo {
		row = lo
	}
	if row > hi {
		row = hi
	}
	if col < 0 {
		col = 0
	}
	if col > e.cols-1 {
		col = e.cols - 1
	}
	e.cursor.Row, e.cursor.Col = row, col
	e.cursor.PendingWrap = false
}

func (e *Emulator) setCursorCol(col int) {
	if col < 0 {
		col = 0
	}
	if col > e.cols-1 {
		col = e.cols - 1
	}
	e.cursor.Col = col
	e.cursor.PendingWrap = false
}

func (e *Emulator) setCursorRow(row int) {
	base := 0
	if e.modes.Is(ModeDECOM) {
		base = e.scrollRegion.Top
	}
	row += base
	if row < 0 {
		row = 0
	}
	if row > e.rows-1 {
		row = e.rows - 1
	}
	e.cursor.Row = row
	e.cursor.PendingWrap = false
}

func (e *Emulator) setCursorPos(row, col int) {
	base := 0
	if e.modes.Is(ModeDECOM) {
		base = e.scrollRegion.Top
	}
	row += base
	if row < 0 {
		row = 0
	}
	if row > e.rows-1 {
		row = e.rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col > e.cols-1 {
		col = e.cols - 1
	}
	e.cursor.Row, e.cursor.Col = row, col
	e.cursor.PendingWrap = false
}

func (e *Emulator) setScrollRegion(p csiParams) {
	top := int(p.get(0, 1)) - 1
	bottom := int(p.get(1, int32(e.rows))) - 1
	if top < 0 {
		top = 0
	}
	if bottom > e.rows-1 {
		bottom = e.rows - 1
	}
	if top >= bottom {
		e.scrollRegion = fullScrollRegion(e.rows)
	} else {
		e.scrollRegion = ScrollRegion{Top: top, Bottom: bottom}
	}
	e.homeCursor()
}

func (e *Emulator) setCursorStyle(v int32) {
	switch v {
	case 0, 1:
		e.cursor.Style = CursorStyleBlinkingBlock
	case 2:
		e.cursor.Style = CursorStyleSteadyBlock
	case 3:
		e.cursor.Style = CursorStyleBlinkingUnderline
	case 4:
		e.cursor.Style = CursorStyleSteadyUnderline
	case 5:
		e.cursor.Style = CursorStyleBlinkingBar
	case 6:
		e.cursor.Style = CursorStyleSteadyBar
	}
}

func (e *Emulator) execDsr(p csiParams) {
	switch p.get(0, 0) {
	case 5:
		e.respond([]byte("\x1b[0n"))
	case 6:
		e.respond([]byte(fmt.Sprintf("\x1b[%d;%dR", e.cursor.Row+1, e.cursor.Col+1)))
	}
}

// applySgr folds every field of a CSI ... m sequence into the template
// style, handling the 38/48/58 extended-color forms in both their colon
// and legacy semicolon shapes.
func (e *Emulator) applySgr(tok Token, p csiParams) {
	if len(p.values) == 0 {
		e.template.Style = DefaultStyle
		return
	}
	for i := 0; i < len(p.values); i++ {
		var subs []int32
		if i < len(tok.SubParams) {
			subs = tok.SubParams[i]
		}
		skip := e.template.Style.applySGR(p.values[i], subs, p.values[i+1:])
		i += skip
	}
}

// csiParams is a thin, read-only view over a CSI token's parsed fields
// with ECMA-48 default substitution, independent of the Params type the
// parser itself used to accumulate them.
type csiParams struct {
	values []int32
}

func (p csiParams) get(i int, def int32) int32 {
	if i < 0 || i >= len(p.values) {
		return def
	}
	if p.values[i] == 0 && def != 0 {
		// A present-but-empty field was stored as 0 by Params.pushField;
		// ECMA-48 treats that the same as an absent field for commands
		// whose default is non-zero (e.g. cursor moves default to 1).
		return def
	}
	return p.values[i]
}
