package vtcore

// StyleFlags is a bitmask of SGR text attributes that are not colors
// (§3 StyleAttr; §4.3 SGR subtable).
type StyleFlags uint16

const (
	StyleBold StyleFlags = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleDoubleUnderline
	StyleCurlyUnderline
	StyleBlinkSlow
	StyleBlinkFast
	StyleReverse
	StyleHidden
	StyleStrike
	StyleOverline
)

// StyleAttr is the complete, value-typed rendering state that SGR mutates
// and that Print stamps onto new cells. Being a plain struct, copying it
// (e.g. into CellTemplate, or onto SavedCursor) is a full snapshot.
type StyleAttr struct {
	Fg             Color
	Bg             Color
	UnderlineColor Color
	Flags          StyleFlags
}

// DefaultStyle is the power-on / post-reset SGR state: default colors, no
// attributes.
var DefaultStyle = StyleAttr{Fg: DefaultColor, Bg: DefaultColor, UnderlineColor: DefaultColor}

func (s *StyleAttr) has(f StyleFlags) bool { return s.Flags&f != 0 }
func (s *StyleAttr) set(f StyleFlags)      { s.Flags |= f }
func (s *StyleAttr) clear(f StyleFlags)    { s.Flags &^= f }

// applySGR folds one already-split SGR parameter (plus its colon
// sub-parameters and, for 38/48/58, a cursor into the remaining top-level
// params for the legacy semicolon-separated color form) into s. It returns
// the number of additional top-level params consumed, so the caller can
// advance its index for the 38;5;n / 38;2;r;g;b legacy forms.
func (s *StyleAttr) applySGR(param int32, subs []int32, rest []int32) int {
	switch param {
	case 0:
		*s = DefaultStyle
	case 1:
		s.set(StyleBold)
	case 2:
		s.set(StyleDim)
	case 3:
		s.set(StyleItalic)
	case 4:
		if len(subs) > 0 {
			switch subs[0] {
			case 0:
				s.clear(StyleUnderline)
				s.clear(StyleDoubleUnderline)
				s.clear(StyleCurlyUnderline)
			case 2:
				s.set(StyleDoubleUnderline)
			case 3:
				s.set(StyleCurlyUnderline)
			default:
				s.set(StyleUnderline)
			}
		} else {
			s.set(StyleUnderline)
		}
	case 5:
		s.set(StyleBlinkSlow)
	case 6:
		s.set(StyleBlinkFast)
	case 7:
		s.set(StyleReverse)
	case 8:
		s.set(StyleHidden)
	case 9:
		s.set(StyleStrike)
	case 21:
		s.set(StyleDoubleUnderline)
	case 22:
		s.clear(StyleBold)
		s.clear(StyleDim)
	case 23:
		s.clear(StyleItalic)
	case 24:
		s.clear(StyleUnderline)
		s.clear(StyleDoubleUnderline)
		s.clear(StyleCurlyUnderline)
	case 25:
		s.clear(StyleBlinkSlow)
		s.clear(StyleBlinkFast)
	case 27:
		s.clear(StyleReverse)
	case 28:
		s.clear(StyleHidden)
	case 29:
		s.clear(StyleStrike)
	case 30, 31, 32, 33, 34, 35, 36, 37:
		s.Fg = Indexed(uint8(param - 30))
	case 38:
		n, color := parseExtendedColor(subs, rest)
		if color != nil {
			s.Fg = *color
		}
		return n
	case 39:
		s.Fg = DefaultColor
	case 40, 41, 42, 43, 44, 45, 46, 47:
		s.Bg = Indexed(uint8(param - 40))
	case 48:
		n, color := parseExtendedColor(subs, rest)
		if color != nil {
			s.Bg = *color
		}
		return n
	case 49:
		s.Bg = DefaultColor
	case 53:
		s.set(StyleOverline)
	case 55:
		s.clear(StyleOverline)
	case 58:
		n, color := parseExtendedColor(subs, rest)
		if color != nil {
			s.UnderlineColor = *color
		}
		return n
	case 59:
		s.UnderlineColor = DefaultColor
	case 90, 91, 92, 93, 94, 95, 96, 97:
		s.Fg = Indexed(uint8(param - 90 + 8))
	case 100, 101, 102, 103, 104, 105, 106, 107:
		s.Bg = Indexed(uint8(param - 100 + 8))
	}
	return 0
}

// parseExtendedColor handles the 38/48/58 "extended color" SGR forms in
// both their colon sub-parameter shape (38:2::r:g:b, 38:5:n) and their
// legacy semicolon-separated shape (38;2;r;g;b, 38;5;n), the latter
// consuming extra entries from rest and reporting how many via n.
func parseExtendedColor(subs []int32, rest []int32) (n int, c *Color) {
	if len(subs) > 0 {
		switch subs[0] {
		case 5:
			if len(subs) >= 2 {
				v := Indexed(uint8(clampByte(subs[1])))
				return 0, &v
			}
		case 2:
			if len(subs) >= 4 {
				v := TrueColor(uint8(clampByte(subs[len(subs)-3])), uint8(clampByte(subs[len(subs)-2])), uint8(clampByte(subs[len(subs)-1])))
				return 0, &v
			}
		}
		return 0, nil
	}
	if len(rest) == 0 {
		return 0, nil
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			v := Indexed(uint8(clampByte(rest[1])))
			return 2, &v
		}
		return 1, nil
	case 2:
		if len(rest) >= 4 {
			v := TrueColor(uint8(clampByte(rest[1])), uint8(clampByte(rest[2])), uint8(clampByte(rest[3])))
			return 4, &v
		}
		return 1, nil
	}
	return 0, nil
}

// SGRString renders s back into the semicolon-separated SGR parameter list
// a DECRQSS "m" request echoes (§4.3 DCS). It only reproduces attributes
// and colors this package tracks; it is not a byte-for-byte replay of
// whatever sequence originally produced s.
func (s StyleAttr) SGRString() string {
	params := []string{"0"}
	add := func(p string) { params = append(params, p) }

	if s.has(StyleBold) {
		add("1")
	}
	if s.has(StyleDim) {
		add("2")
	}
	if s.has(StyleItalic) {
		add("3")
	}
	switch {
	case s.has(StyleDoubleUnderline):
		add("21")
	case s.has(StyleCurlyUnderline):
		add("4:3")
	case s.has(StyleUnderline):
		add("4")
	}
	if s.has(StyleBlinkSlow) {
		add("5")
	}
	if s.has(StyleBlinkFast) {
		add("6")
	}
	if s.has(StyleReverse) {
		add("7")
	}
	if s.has(StyleHidden) {
		add("8")
	}
	if s.has(StyleStrike) {
		add("9")
	}
	if s.has(StyleOverline) {
		add("53")
	}
	params = append(params, sgrColorParams(s.Fg, 30, 38)...)
	params = append(params, sgrColorParams(s.Bg, 40, 48)...)

	out := params[0]
	for _, p := range params[1:] {
		out += ";" + p
	}
	return out
}

func sgrColorParams(c Color, base, extended int32) []string {
	switch c.Kind {
	case ColorIndexed:
		if c.Index < 8 {
			return []string{itoa(int(base) + int(c.Index))}
		}
		if c.Index < 16 {
			return []string{itoa(int(base) + 60 + int(c.Index) - 8)}
		}
		return []string{itoa(int(extended)), "5", itoa(int(c.Index))}
	case ColorTrueColor:
		return []string{itoa(int(extended)), "2", itoa(int(c.R)), itoa(int(c.G)), itoa(int(c.B))}
	default:
		return nil
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func clampByte(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
