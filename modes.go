package vtcore

// Mode identifies one terminal mode, set/reset by SM/RM (public, ANSI
// numbering) or DECSET/DECRST (DEC-private numbering). The two namespaces
// are kept disjoint by giving private modes their own offset so a single
// Modes set can hold both (§3 Modes, §6 "recognized modes table").
type Mode int

const (
	// Public (ANSI) modes, set via CSI Pm h / CSI Pm l.
	ModeIRM Mode = iota // 4: Insert/Replace
	ModeLNM             // 20: Line Feed/New Line

	modePrivateOffset = 1000
)

// Private DEC modes, set via CSI ? Pm h / CSI ? Pm l. Values are the
// modePrivateOffset-shifted DEC numbers so Mode stays a flat enum.
const (
	ModeDECCKM        Mode = modePrivateOffset + 1    // application cursor keys
	ModeDECCOLM       Mode = modePrivateOffset + 3    // 80/132 column switch
	ModeDECOM         Mode = modePrivateOffset + 6    // origin mode
	ModeDECAWM        Mode = modePrivateOffset + 7    // autowrap
	ModeX10Mouse      Mode = modePrivateOffset + 9
	ModeCursorBlink   Mode = modePrivateOffset + 12
	ModeDECTCEM       Mode = modePrivateOffset + 25   // cursor visible
	ModeAltScreen47   Mode = modePrivateOffset + 47   // alt screen, no cursor save/clear
	ModeVT200Mouse    Mode = modePrivateOffset + 1000
	ModeBtnEvMouse    Mode = modePrivateOffset + 1002
	ModeAnyEvMouse    Mode = modePrivateOffset + 1003
	ModeSGRMouse      Mode = modePrivateOffset + 1006
	ModeAltScreen1047 Mode = modePrivateOffset + 1047 // alt screen, no cursor save/clear
	ModeUrxvtMouse    Mode = modePrivateOffset + 1015
	ModeAltScreen     Mode = modePrivateOffset + 1049 // alt screen + cursor save + clear
	ModeBracketPaste  Mode = modePrivateOffset + 2004
)

// privateMode maps a DECSET/DECRST numeric parameter to its Mode constant.
func privateMode(n int32) (Mode, bool) {
	switch n {
	case 1:
		return ModeDECCKM, true
	case 3:
		return ModeDECCOLM, true
	case 6:
		return ModeDECOM, true
	case 7:
		return ModeDECAWM, true
	case 9:
		return ModeX10Mouse, true
	case 12:
		return ModeCursorBlink, true
	case 25:
		return ModeDECTCEM, true
	case 47:
		return ModeAltScreen47, true
	case 1000:
		return ModeVT200Mouse, true
	case 1002:
		return ModeBtnEvMouse, true
	case 1003:
		return ModeAnyEvMouse, true
	case 1006:
		return ModeSGRMouse, true
	case 1015:
		return ModeUrxvtMouse, true
	case 1047:
		return ModeAltScreen1047, true
	case 1049:
		return ModeAltScreen, true
	case 2004:
		return ModeBracketPaste, true
	default:
		return 0, false
	}
}

// publicMode maps an SM/RM numeric parameter to its Mode constant.
func publicMode(n int32) (Mode, bool) {
	switch n {
	case 4:
		return ModeIRM, true
	case 20:
		return ModeLNM, true
	default:
		return 0, false
	}
}

// Modes is the set of currently active modes. The zero value is the
// power-on default except for DECAWM and DECTCEM, which power on set;
// NewModes applies that.
type Modes struct {
	set map[Mode]bool
}

// NewModes returns the power-on mode set: autowrap and cursor visibility
// on, everything else off.
func NewModes() *Modes {
	m := &Modes{set: make(map[Mode]bool)}
	m.set[ModeDECAWM] = true
	m.set[ModeDECTCEM] = true
	return m
}

func (m *Modes) Is(mode Mode) bool {
	return m.set[mode]
}

func (m *Modes) Set(mode Mode, on bool) {
	if on {
		m.set[mode] = true
	} else {
		delete(m.set, mode)
	}
}
