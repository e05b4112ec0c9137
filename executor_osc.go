package vtcore

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// execOsc dispatches a terminated OSC sequence by its numeric id (§4.3 OSC
// table). Payload has already had the "id;" prefix stripped by the parser.
func (e *Emulator) execOsc(tok Token) {
	switch tok.ID {
	case 0, 2: // set window/icon title
		e.cfg.title.SetTitle(string(tok.Payload))
	case 1: // icon name: accepted, no effect
	case 4:
		e.execOscPalette(tok.Payload)
	case 8:
		e.execOscHyperlink(tok.Payload)
	case 10:
		e.execOscDefaultColor(tok.Payload, true)
	case 11:
		e.execOscDefaultColor(tok.Payload, false)
	case 52:
		e.execOscClipboard(tok.Payload)
	case 104:
		e.execOscResetPalette(tok.Payload)
	}
}

// execOscPalette implements OSC 4: `4;index;spec[;index;spec...]`. A `?`
// spec is a query; any other unparseable spec is ignored for that index.
func (e *Emulator) execOscPalette(payload []byte) {
	fields := bytes.Split(payload, []byte{';'})
	for i := 0; i+1 < len(fields); i += 2 {
		idx, ok := parseUint8(fields[i])
		if !ok {
			continue
		}
		spec := fields[i+1]
		if string(spec) == "?" {
			r, g, b := e.palette.At(idx)
			e.respond([]byte(fmt.Sprintf("\x1b]4;%d;rgb:%02x/%02x/%02x\x1b\\", idx, r, g, b)))
			continue
		}
		if r, g, b, ok := parseColorSpec(spec); ok {
			e.palette.Set(idx, r, g, b)
		}
	}
}

// execOscResetPalette implements OSC 104: an empty payload resets the
// entire palette; otherwise each listed index is reset individually.
func (e *Emulator) execOscResetPalette(payload []byte) {
	if len(payload) == 0 {
		e.palette = NewPalette()
		return
	}
	fresh := NewPalette()
	for _, f := range bytes.Split(payload, []byte{';'}) {
		idx, ok := parseUint8(f)
		if !ok {
			continue
		}
		r, g, b := fresh.At(idx)
		e.palette.Set(idx, r, g, b)
	}
}

// execOscHyperlink implements OSC 8: `8;params;uri`. An empty uri closes
// the active hyperlink. A missing `id=` parameter gets one generated so
// every hyperlink surfaced in a Snapshot carries a stable identifier
// (teacher's Hyperlink type, see DESIGN.md).
func (e *Emulator) execOscHyperlink(payload []byte) {
	parts := bytes.SplitN(payload, []byte{';'}, 2)
	params := parts[0]
	var uri []byte
	if len(parts) == 2 {
		uri = parts[1]
	}
	if len(uri) == 0 {
		e.activeHyperlink = nil
		return
	}

	id := hyperlinkParamID(params)
	if id == "" {
		id = uuid.NewString()
	}
	e.activeHyperlink = &Hyperlink{ID: id, URI: string(uri)}
}

func hyperlinkParamID(params []byte) string {
	for _, kv := range bytes.Split(params, []byte{':'}) {
		if k, v, ok := bytes.Cut(kv, []byte{'='}); ok && string(k) == "id" {
			return string(v)
		}
	}
	return ""
}

// execOscDefaultColor implements OSC 10/11: set or query the default
// foreground/background color.
func (e *Emulator) execOscDefaultColor(payload []byte, isFg bool) {
	if string(payload) == "?" {
		c := e.defaultBg
		id := 11
		if isFg {
			c = e.defaultFg
			id = 10
		}
		r, g, b := c.RGB(e.palette, c)
		e.respond([]byte(fmt.Sprintf("\x1b]%d;rgb:%02x/%02x/%02x\x1b\\", id, r, g, b)))
		return
	}
	r, g, b, ok := parseColorSpec(payload)
	if !ok {
		return
	}
	if isFg {
		e.defaultFg = TrueColor(r, g, b)
	} else {
		e.defaultBg = TrueColor(r, g, b)
	}
}

// execOscClipboard implements OSC 52: `52;c;base64data` sets the named
// clipboard, `52;c;?` queries it. The core never touches the OS clipboard
// itself (§1 Non-goals); it only proxies to the configured
// ClipboardProvider.
func (e *Emulator) execOscClipboard(payload []byte) {
	parts := bytes.SplitN(payload, []byte{';'}, 2)
	if len(parts) != 2 || len(parts[0]) == 0 {
		return
	}
	clipboard := parts[0][0]
	data := parts[1]

	if string(data) == "?" {
		encoded := e.cfg.clipboard.Read(clipboard)
		e.respond([]byte(fmt.Sprintf("\x1b]52;%c;%s\x1b\\", clipboard, encoded)))
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return
	}
	e.cfg.clipboard.Write(clipboard, decoded)
}

func parseUint8(b []byte) (uint8, bool) {
	if len(b) == 0 || len(b) > 3 {
		return 0, false
	}
	var v int
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	if v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// parseColorSpec parses the two color-spec forms xterm accepts in OSC
// 4/10/11: `rgb:RR/GG/BB` (each component 1-4 hex digits, taking the high
// byte) and `#RRGGBB`.
func parseColorSpec(spec []byte) (r, g, b uint8, ok bool) {
	s := string(spec)
	if len(s) > 0 && s[0] == '#' {
		return parseHexTriplet(s[1:])
	}
	if len(s) > 4 && s[:4] == "rgb:" {
		parts := bytes.Split([]byte(s[4:]), []byte{'/'})
		if len(parts) != 3 {
			return 0, 0, 0, false
		}
		rr, ok1 := parseHexComponent(parts[0])
		gg, ok2 := parseHexComponent(parts[1])
		bb, ok3 := parseHexComponent(parts[2])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		return rr, gg, bb, true
	}
	return 0, 0, 0, false
}

func parseHexTriplet(s string) (r, g, b uint8, ok bool) {
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	rr, ok1 := parseHexComponent([]byte(s[0:2]))
	gg, ok2 := parseHexComponent([]byte(s[2:4]))
	bb, ok3 := parseHexComponent([]byte(s[4:6]))
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, false
	}
	return rr, gg, bb, true
}

// parseHexComponent parses 1-4 hex digits, as xterm allows for rgb:
// specs, and scales down to a single byte by taking the most significant
// 8 bits.
func parseHexComponent(digits []byte) (uint8, bool) {
	if len(digits) == 0 || len(digits) > 4 {
		return 0, false
	}
	var v int
	for _, c := range digits {
		n, ok := hexDigit(c)
		if !ok {
			return 0, false
		}
		v = v*16 + n
	}
	bits := len(digits) * 4
	if bits > 8 {
		v >>= uint(bits - 8)
	} else if bits < 8 {
		v <<= uint(8 - bits)
	}
	return uint8(v), true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
