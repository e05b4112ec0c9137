package vtcore

import (
	"unicode/utf8"

	"github.com/unilibs/uniwidth"
)

// decodeResult is the outcome of feeding one byte to the Decoder.
type decodeResult struct {
	// emit is true when a Printable token is ready.
	emit bool
	cp   rune
	width int
	// reprocess is true when b was not consumed (an in-progress UTF-8
	// sequence broke early) and the caller must feed b again after
	// handling the emitted replacement token.
	reprocess bool
}

// Decoder assembles UTF-8 sequences seen while the Parser is in the Ground
// state. It is never consulted for bytes inside an escape/CSI/OSC/DCS
// string — those are 8-bit clean per §4.1 and the Parser collects them
// itself. The Decoder never fails: undecodable input becomes U+FFFD.
type Decoder struct {
	buf      [4]byte
	have     int
	want     int
}

func (d *Decoder) reset() {
	d.have = 0
	d.want = 0
}

func (d *Decoder) inProgress() bool {
	return d.want > 0
}

// feed advances UTF-8 assembly by one byte. Callers must only invoke this
// for bytes with the high bit set (0x80-0xFF); plain ASCII in Ground is a
// one-byte Printable and bypasses the accumulator entirely.
func (d *Decoder) feed(b byte) decodeResult {
	if d.want == 0 {
		switch {
		case b&0xE0 == 0xC0:
			d.want = 2
		case b&0xF0 == 0xE0:
			d.want = 3
		case b&0xF8 == 0xF0:
			d.want = 4
		default:
			// Stray continuation byte or invalid lead byte (0x80-0xBF, 0xF8-0xFF).
			return decodeResult{emit: true, cp: 0xFFFD, width: 1}
		}
		d.buf[0] = b
		d.have = 1
		return decodeResult{}
	}

	if b&0xC0 != 0x80 {
		// Sequence broke before completion; emit replacement for what we
		// had and let the caller re-feed b, since it may start fresh.
		d.reset()
		return decodeResult{emit: true, cp: 0xFFFD, width: 1, reprocess: true}
	}

	d.buf[d.have] = b
	d.have++
	if d.have < d.want {
		return decodeResult{}
	}

	seq := d.buf[:d.have]
	r, size := utf8.DecodeRune(seq)
	d.reset()
	if r == utf8.RuneError || size != len(seq) {
		return decodeResult{emit: true, cp: 0xFFFD, width: 1}
	}
	return decodeResult{emit: true, cp: r, width: uniwidth.RuneWidth(r)}
}
