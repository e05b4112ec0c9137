package vtcore

import "unicode/utf8"

// NamedKey enumerates the non-printable keys the Input Encoder recognizes
// (§4.7). Keys with no defined encoding (e.g. unmapped function keys)
// silently produce no bytes, matching the rest of the package's policy of
// absorbing rather than rejecting unrecognized input.
type NamedKey int

const (
	KeyNone NamedKey = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// Modifiers mirrors the key event's modifier set.
type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
	Meta  bool
}

// modCode computes the xterm modifier parameter: 1 plus a bit for each
// active modifier. A return of 1 means "no modifiers", which callers omit
// from the encoded sequence entirely.
func (m Modifiers) modCode() int32 {
	code := int32(1)
	if m.Shift {
		code += 1
	}
	if m.Alt {
		code += 2
	}
	if m.Ctrl {
		code += 4
	}
	if m.Meta {
		code += 8
	}
	return code
}

// KeyEvent is a logical key press: either a printable codepoint or a
// Named key, plus modifiers (§4.7).
type KeyEvent struct {
	Char  rune
	Named NamedKey
	Mods  Modifiers
}

var fKeyTilde = map[NamedKey]int32{
	KeyF5: 15, KeyF6: 17, KeyF7: 18, KeyF8: 19,
	KeyF9: 20, KeyF10: 21, KeyF11: 23, KeyF12: 24,
	KeyF13: 25, KeyF14: 26, KeyF15: 28, KeyF16: 29,
	KeyF17: 31, KeyF18: 32, KeyF19: 33, KeyF20: 34,
}

var fKeySS3 = map[NamedKey]byte{
	KeyF1: 'P', KeyF2: 'Q', KeyF3: 'R', KeyF4: 'S',
}

var cursorKeyFinal = map[NamedKey]byte{
	KeyArrowUp: 'A', KeyArrowDown: 'B', KeyArrowRight: 'C', KeyArrowLeft: 'D',
	KeyHome: 'H', KeyEnd: 'F',
}

var tildeKey = map[NamedKey]int32{
	KeyInsert: 2, KeyDelete: 3, KeyPageUp: 5, KeyPageDown: 6,
}

// encodeKey implements §4.7's rules, producing the contiguous byte
// sequence a host program expects for a single logical key press.
func encodeKey(ev KeyEvent, appCursor, bracketPaste bool) []byte {
	if ev.Named == KeyNone {
		return encodeChar(ev.Char, ev.Mods)
	}

	if final, ok := cursorKeyFinal[ev.Named]; ok {
		return encodeCursorLike(final, appCursor, ev.Mods)
	}
	if n, ok := tildeKey[ev.Named]; ok {
		return encodeTilde(n, ev.Mods)
	}
	if final, ok := fKeySS3[ev.Named]; ok {
		return encodeCursorLike(final, true, ev.Mods)
	}
	if n, ok := fKeyTilde[ev.Named]; ok {
		return encodeTilde(n, ev.Mods)
	}

	switch ev.Named {
	case KeyBackspace:
		return withAlt([]byte{0x7f}, ev.Mods.Alt)
	case KeyTab:
		if ev.Mods.Shift {
			return []byte("\x1b[Z")
		}
		return withAlt([]byte{'\t'}, ev.Mods.Alt)
	case KeyEnter:
		return withAlt([]byte{'\r'}, ev.Mods.Alt)
	case KeyEscape:
		return []byte{0x1b}
	}
	return nil
}

// encodeCursorLike covers arrows and Home/End, which share the
// CSI-normal/SS3-application split governed by DECCKM.
func encodeCursorLike(final byte, appCursor bool, mods Modifiers) []byte {
	if mod := mods.modCode(); mod > 1 {
		out := append([]byte("\x1b[1;"), digits(mod)...)
		return append(out, final)
	}
	if appCursor {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// encodeTilde covers Insert/Delete/PageUp/PageDown/F5-F20, the
// `CSI N ~` family.
func encodeTilde(n int32, mods Modifiers) []byte {
	out := append([]byte("\x1b["), digits(n)...)
	if mod := mods.modCode(); mod > 1 {
		out = append(out, ';')
		out = append(out, digits(mod)...)
	}
	return append(out, '~')
}

// encodeChar handles printable runes, applying the Ctrl-letter control-byte
// rule and the Alt-prefixes-ESC rule.
func encodeChar(r rune, mods Modifiers) []byte {
	if mods.Ctrl && r >= 'a' && r <= 'z' {
		return withAlt([]byte{byte(r-'a') + 1}, mods.Alt)
	}
	if mods.Ctrl && r >= 'A' && r <= 'Z' {
		return withAlt([]byte{byte(r-'A') + 1}, mods.Alt)
	}
	if mods.Ctrl && r == ' ' {
		return withAlt([]byte{0}, mods.Alt)
	}

	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return withAlt(buf[:n], mods.Alt)
}

func withAlt(b []byte, alt bool) []byte {
	if !alt {
		return b
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, 0x1b)
	return append(out, b...)
}

// digits renders a small non-negative integer without allocating through
// fmt, since this sits on the hot path between a keystroke and the PTY.
func digits(n int32) []byte {
	if n == 0 {
		return []byte{'0'}
	}
	var tmp [8]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return tmp[i:]
}

// encodePaste wraps text in bracketed-paste markers when that mode is
// active (§4.7).
func encodePaste(text string, bracketPasteActive bool) []byte {
	if !bracketPasteActive {
		return []byte(text)
	}
	out := make([]byte, 0, len(text)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, text...)
	out = append(out, "\x1b[201~"...)
	return out
}
