package vtcore

// dispatch is the Executor's single entry point, called by the parser for
// every completed Token (§4.3 "Command Dispatcher"). It never returns an
// error: an unrecognized or out-of-range command is silently ignored,
// matching real terminal behavior rather than surfacing a parse failure.
func (e *Emulator) dispatch(tok Token) {
	switch tok.Kind {
	case TokenPrintable:
		e.printRune(tok.Codepoint, tok.Width)
	case TokenC0Control:
		e.execC0(tok.Control)
	case TokenEscFinal:
		e.execEsc(tok)
	case TokenCsiFinal:
		e.execCsi(tok)
	case TokenOscData:
		e.execOsc(tok)
	case TokenDcsData:
		e.execDcs(tok)
	case TokenSosPmApcData:
		e.execSosPmApc(tok)
	}
}

// execC0 handles the C0 control codes that have independent meaning
// outside of escape sequences (§4.3 "C0 controls").
func (e *Emulator) execC0(b byte) {
	switch b {
	case 0x07: // BEL
		e.cfg.bell.Ring()
	case 0x08: // BS
		if e.cursor.Col > 0 {
			e.cursor.Col--
			e.cursor.PendingWrap = false
		}
	case 0x09: // HT
		e.cursor.Col = e.activeBuffer().NextTabStop(e.cursor.Col)
		e.cursor.PendingWrap = false
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		e.activeBuffer().SetWrapped(e.cursor.Row, false)
		e.lineFeed()
		if e.modes.Is(ModeLNM) {
			e.cursor.Col = 0
		}
		e.cursor.PendingWrap = false
	case 0x0D: // CR
		e.cursor.Col = 0
		e.cursor.PendingWrap = false
	case 0x0E: // SO (LS1)
		e.charsets.lockingShift(1)
	case 0x0F: // SI (LS0)
		e.charsets.lockingShift(0)
	}
}

// execEsc handles escape sequences that terminate outside of CSI/OSC/DCS
// (§4.3: cursor save/restore, index movements, SCS charset designation,
// the DECALN test pattern).
func (e *Emulator) execEsc(tok Token) {
	if len(tok.Intermediates) == 1 {
		switch tok.Intermediates[0] {
		case '(', ')', '*', '+':
			gIndex, _ := gIndexForSCSIntermediate(tok.Intermediates[0])
			if cs, ok := scsCharset(tok.Final); ok {
				e.charsets.designate(gIndex, cs)
			}
			return
		case '#':
			if tok.Final == '8' {
				e.activeBuffer().FillWithE()
			}
			return
		}
	}

	switch tok.Final {
	case '7': // DECSC
		e.saveCursor()
	case '8': // DECRC
		e.restoreCursor()
	case 'D': // IND
		e.lineFeed()
	case 'M': // RI
		e.reverseLineFeed()
	case 'E': // NEL
		e.cursor.Col = 0
		e.lineFeed()
	case 'H': // HTS
		e.activeBuffer().SetTabStop(e.cursor.Col)
	case 'c': // RIS
		e.reset()
	case 'n': // LS2
		e.charsets.lockingShift(2)
	case 'o': // LS3
		e.charsets.lockingShift(3)
	case 'N': // SS2
		e.charsets.singleShift2()
	case 'O': // SS3
		e.charsets.singleShift3()
	case '=', '>': // DECKPAM / DECKPNM, no numeric keypad state tracked
	}
}

// saveCursor implements DECSC: snapshot position, style, origin mode, and
// charset state (§3 SavedCursor).
func (e *Emulator) saveCursor() {
	saved := SavedCursor{
		Row: e.cursor.Row, Col: e.cursor.Col,
		Style:      e.template.Style,
		OriginMode: e.modes.Is(ModeDECOM),
		Charsets:   e.charsets,
	}
	if e.usingAlt {
		e.savedAlternate = saved
	} else {
		e.savedPrimary = saved
	}
}

func (e *Emulator) restoreCursor() {
	var saved SavedCursor
	if e.usingAlt {
		saved = e.savedAlternate
	} else {
		saved = e.savedPrimary
	}
	e.cursor.Row, e.cursor.Col = saved.Row, saved.Col
	e.cursor.PendingWrap = false
	e.template.Style = saved.Style
	e.modes.Set(ModeDECOM, saved.OriginMode)
	e.charsets = saved.Charsets
}

// reset implements RIS (ESC c): power-on reset of nearly everything.
func (e *Emulator) reset() {
	e.primary.ClearAll(DefaultStyle)
	e.alternate.ClearAll(DefaultStyle)
	e.primary.ClearAllTabStops()
	for i := 0; i < e.cols; i += 8 {
		e.primary.SetTabStop(i)
	}
	e.usingAlt = false
	e.cursor = NewCursor()
	e.modes = NewModes()
	e.charsets = NewCharsetState()
	e.template = NewCellTemplate()
	e.scrollRegion = fullScrollRegion(e.rows)
	e.activeHyperlink = nil
	e.titleStack = nil
	e.sixelSlots = nil
	e.defaultFg = TrueColor(229, 229, 229)
	e.defaultBg = TrueColor(0, 0, 0)
	e.palette = NewPalette()
}

// execSosPmApc routes terminated SOS/PM/APC payloads to their providers
// (§4.3: these families carry opaque application data, never terminal
// commands).
func (e *Emulator) execSosPmApc(tok Token) {
	switch tok.Control {
	case introSOS:
		e.cfg.sos.Receive(tok.Payload)
	case introPM:
		e.cfg.pm.Receive(tok.Payload)
	case introAPC:
		e.cfg.apc.Receive(tok.Payload)
	}
}
