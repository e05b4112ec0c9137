package vtcore

import "fmt"

// SixelSlot is a stashed Sixel payload: the raw bytes the host sent,
// anchored to the cursor position at the time the DCS sequence terminated.
// The core does not rasterize it (§1 Non-goals); a renderer that wants
// actual pixels decodes Payload itself.
type SixelSlot struct {
	Row, Col int
	Payload  []byte
}

// SixelSlots returns the Sixel payloads accumulated since the last reset,
// in receipt order.
func (e *Emulator) SixelSlots() []SixelSlot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]SixelSlot, len(e.sixelSlots))
	copy(out, e.sixelSlots)
	return out
}

// execDcs dispatches a terminated DCS sequence. Only Sixel (bare final
// 'q') and DECRQSS (`$ q`) are recognized; any other DCS is dropped here
// (§4.3).
func (e *Emulator) execDcs(tok Token) {
	switch {
	case len(tok.Intermediates) == 0 && tok.Final == 'q':
		e.sixelSlots = append(e.sixelSlots, SixelSlot{
			Row:     e.cursor.Row,
			Col:     e.cursor.Col,
			Payload: append([]byte(nil), tok.Payload...),
		})
	case len(tok.Intermediates) == 1 && tok.Intermediates[0] == '$' && tok.Final == 'q':
		e.execDecrqss(tok)
	}
}

// execDecrqss answers a DECRQSS request (DCS $ q Pt ST) for the handful of
// settings this emulator tracks, responding `DCS 1 $ r <value> ST` when
// recognized or `DCS 0 $ r ST` otherwise.
func (e *Emulator) execDecrqss(tok Token) {
	value, ok := e.decrqssValue(string(tok.Payload))
	if !ok {
		e.respond([]byte("\x1bP0$r\x1b\\"))
		return
	}
	e.respond([]byte(fmt.Sprintf("\x1bP1$r%s\x1b\\", value)))
}

func (e *Emulator) decrqssValue(setting string) (string, bool) {
	switch setting {
	case "m":
		return e.template.Style.SGRString() + "m", true
	case "r":
		return fmt.Sprintf("%d;%dr", e.scrollRegion.Top+1, e.scrollRegion.Bottom+1), true
	default:
		return "", false
	}
}
