package vtcore

// State is a node of the classical Paul Williams VT500 parser state
// machine (§4.2).
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCsiEntry
	StateCsiParam
	StateCsiIntermediate
	StateCsiIgnore
	StateDcsEntry
	StateDcsParam
	StateDcsIntermediate
	StateDcsPassthrough
	StateDcsIgnore
	StateOscString
	StateSosPmApcString
)

// Introducer bytes for SOS/PM/APC, carried on the dispatched token so the
// executor knows which of the three string types it received.
const (
	introSOS = 'X'
	introPM  = '^'
	introAPC = '_'
)

// Parser drives the VT500 table over a byte stream, producing Tokens for
// the Executor. It owns the Byte Decoder (used only for Ground-state UTF-8
// assembly) since the two states interact: a byte seen while the parser is
// in Ground is decoded as UTF-8; the same byte value inside a CSI/OSC/DCS
// string is 8-bit clean payload data and bypasses the decoder entirely.
type Parser struct {
	state State

	intermediates []byte
	params        Params
	private       byte

	dcsFinal byte
	intro    byte
	payload  []byte

	oscLimit int
	dcsLimit int
	truncated bool

	sawEsc  bool
	decoder Decoder
}

// NewParser creates a parser in the Ground state with the given OSC/DCS
// payload caps (§6 Configuration: osc_payload_limit, dcs_payload_limit).
func NewParser(oscLimit, dcsLimit int) *Parser {
	if oscLimit <= 0 {
		oscLimit = 4096
	}
	if dcsLimit <= 0 {
		dcsLimit = 65536
	}
	return &Parser{oscLimit: oscLimit, dcsLimit: dcsLimit}
}

// Reset returns the parser to Ground, discarding any sequence in progress.
// Used for CAN/SUB and after a string sequence has been terminated.
func (p *Parser) Reset() {
	p.state = StateGround
	p.intermediates = p.intermediates[:0]
	p.params.reset()
	p.private = 0
	p.payload = nil
	p.sawEsc = false
	p.truncated = false
	p.decoder.reset()
}

func (p *Parser) clear() {
	p.intermediates = p.intermediates[:0]
	p.params.reset()
	p.private = 0
}

// Step advances the parser by one byte, invoking emit zero or more times
// (zero for bytes that only move the state machine, once for a completed
// token). It never panics and never blocks.
func (p *Parser) Step(b byte, emit func(Token)) {
	work := [2]byte{b}
	n := 1
	for n > 0 {
		cur := work[0]
		n--
		work[0] = work[1]
		extra, reprocess := p.step1(cur, emit)
		if reprocess {
			work[n] = extra
			n++
		}
	}
}

func (p *Parser) step1(b byte, emit func(Token)) (extra byte, reprocess bool) {
	// Strings that may be terminated by ESC \ (ST) need first refusal on
	// ESC before the generic "anywhere" rules below.
	switch p.state {
	case StateDcsPassthrough, StateDcsIgnore, StateOscString, StateSosPmApcString:
		return p.stepString(b, emit)
	}

	switch b {
	case 0x18, 0x1A: // CAN, SUB
		p.Reset()
		return 0, false
	case 0x1B: // ESC
		p.clear()
		p.state = StateEscape
		return 0, false
	}

	switch p.state {
	case StateGround:
		return p.stepGround(b, emit)
	case StateEscape:
		p.stepEscape(b, emit)
	case StateEscapeIntermediate:
		p.stepEscapeIntermediate(b, emit)
	case StateCsiEntry:
		p.stepCsiEntry(b, emit)
	case StateCsiParam:
		p.stepCsiParam(b, emit)
	case StateCsiIntermediate:
		p.stepCsiIntermediate(b, emit)
	case StateCsiIgnore:
		p.stepCsiIgnore(b)
	case StateDcsEntry:
		p.stepDcsEntry(b)
	case StateDcsParam:
		p.stepDcsParam(b)
	case StateDcsIntermediate:
		p.stepDcsIntermediate(b)
	}
	return 0, false
}

// --- Ground ---

func (p *Parser) stepGround(b byte, emit func(Token)) (extra byte, reprocess bool) {
	switch {
	case b <= 0x1F:
		p.execute(b, emit)
		return 0, false
	case b == 0x7F:
		return 0, false // DEL: ignored.
	case b < 0x80:
		emit(Token{Kind: TokenPrintable, Codepoint: rune(b), Width: 1})
		return 0, false
	default:
		res := p.decoder.feed(b)
		if res.emit {
			emit(Token{Kind: TokenPrintable, Codepoint: res.cp, Width: res.width})
		}
		if res.reprocess {
			return b, true
		}
		return 0, false
	}
}

func (p *Parser) execute(b byte, emit func(Token)) {
	emit(Token{Kind: TokenC0Control, Control: b})
}

// --- Escape family ---

func (p *Parser) stepEscape(b byte, emit func(Token)) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
		p.execute(b, emit)
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = StateEscapeIntermediate
	case b == '[':
		p.clear()
		p.state = StateCsiEntry
	case b == ']':
		p.clear()
		p.payload = p.payload[:0]
		p.state = StateOscString
	case b == 'P':
		p.clear()
		p.state = StateDcsEntry
	case b == 'X':
		p.beginSosPmApc(introSOS)
	case b == '^':
		p.beginSosPmApc(introPM)
	case b == '_':
		p.beginSosPmApc(introAPC)
	case b == 0x7F:
		// ignore
	case b >= 0x30 && b <= 0x7E:
		p.dispatchEsc(b, emit)
	default:
		p.state = StateGround
	}
}

func (p *Parser) beginSosPmApc(intro byte) {
	p.intro = intro
	p.payload = p.payload[:0]
	p.truncated = false
	p.sawEsc = false
	p.state = StateSosPmApcString
}

func (p *Parser) stepEscapeIntermediate(b byte, emit func(Token)) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
		p.execute(b, emit)
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
	case b == 0x7F:
		// ignore
	case b >= 0x30 && b <= 0x7E:
		p.dispatchEsc(b, emit)
	default:
		p.state = StateGround
	}
}

func (p *Parser) dispatchEsc(final byte, emit func(Token)) {
	inter := append([]byte(nil), p.intermediates...)
	emit(Token{Kind: TokenEscFinal, Final: final, Intermediates: inter})
	p.state = StateGround
}

// --- CSI family ---

func (p *Parser) stepCsiEntry(b byte, emit func(Token)) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
		p.execute(b, emit)
	case b >= '0' && b <= '9':
		p.params.digit(b)
		p.state = StateCsiParam
	case b == ':':
		p.params.colon()
		p.state = StateCsiParam
	case b == ';':
		p.params.semicolon()
		p.state = StateCsiParam
	case b >= '<' && b <= '?':
		p.private = b
		p.state = StateCsiParam
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = StateCsiIntermediate
	case b == 0x7F:
		// ignore
	case b >= 0x40 && b <= 0x7E:
		p.dispatchCsi(b, emit)
	default:
		p.state = StateCsiIgnore
	}
}

func (p *Parser) stepCsiParam(b byte, emit func(Token)) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
		p.execute(b, emit)
	case b >= '0' && b <= '9':
		p.params.digit(b)
	case b == ':':
		p.params.colon()
	case b == ';':
		p.params.semicolon()
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = StateCsiIntermediate
	case b == 0x7F:
		// ignore
	case b >= 0x40 && b <= 0x7E:
		p.dispatchCsi(b, emit)
	default:
		p.state = StateCsiIgnore
	}
}

func (p *Parser) stepCsiIntermediate(b byte, emit func(Token)) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
		p.execute(b, emit)
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
	case b == 0x7F:
		// ignore
	case b >= 0x40 && b <= 0x7E:
		p.dispatchCsi(b, emit)
	default:
		p.state = StateCsiIgnore
	}
}

func (p *Parser) stepCsiIgnore(b byte) {
	if b >= 0x40 && b <= 0x7E {
		p.state = StateGround
	}
	// everything else, including further C0 controls, is swallowed until
	// a final byte closes the malformed sequence.
}

func (p *Parser) dispatchCsi(final byte, emit func(Token)) {
	p.params.finish()
	vals, subs := p.params.Snapshot()
	inter := append([]byte(nil), p.intermediates...)
	emit(Token{
		Kind:          TokenCsiFinal,
		Final:         final,
		Intermediates: inter,
		Params:        vals,
		SubParams:     subs,
		Private:       p.private,
	})
	p.state = StateGround
}

// --- DCS family ---

func (p *Parser) stepDcsEntry(b byte) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
		// ignored: DCS suppresses C0 execution while collecting its header
	case b >= '0' && b <= '9':
		p.params.digit(b)
		p.state = StateDcsParam
	case b == ':':
		p.params.colon()
		p.state = StateDcsParam
	case b == ';':
		p.params.semicolon()
		p.state = StateDcsParam
	case b >= '<' && b <= '?':
		p.private = b
		p.state = StateDcsParam
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = StateDcsIntermediate
	case b == 0x7F:
		// ignore
	case b >= 0x40 && b <= 0x7E:
		p.hookDcs(b)
	default:
		p.state = StateDcsIgnore
	}
}

func (p *Parser) stepDcsParam(b byte) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
	case b >= '0' && b <= '9':
		p.params.digit(b)
	case b == ':':
		p.params.colon()
	case b == ';':
		p.params.semicolon()
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = StateDcsIntermediate
	case b == 0x7F:
	case b >= 0x40 && b <= 0x7E:
		p.hookDcs(b)
	default:
		p.state = StateDcsIgnore
	}
}

func (p *Parser) stepDcsIntermediate(b byte) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1C && b <= 0x1F):
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
	case b == 0x7F:
	case b >= 0x40 && b <= 0x7E:
		p.hookDcs(b)
	default:
		p.state = StateDcsIgnore
	}
}

func (p *Parser) hookDcs(final byte) {
	p.params.finish()
	p.dcsFinal = final
	p.payload = p.payload[:0]
	p.truncated = false
	p.sawEsc = false
	p.state = StateDcsPassthrough
}

// --- String states: DCS passthrough/ignore, OSC, SOS/PM/APC ---
// All four collect raw payload bytes until ST (ESC \) and share the same
// early-ESC handling, so they're implemented together.

func (p *Parser) stepString(b byte, emit func(Token)) (extra byte, reprocess bool) {
	if p.sawEsc {
		p.sawEsc = false
		if b == '\\' {
			p.terminateString(emit)
			return 0, false
		}
		// Not a valid ST: the DCS/OSC/SOS/PM/APC string is abandoned and
		// this byte begins a fresh escape sequence.
		p.clear()
		p.state = StateEscape
		return b, true // reprocess this byte in the Escape state
	}

	switch b {
	case 0x1B:
		p.sawEsc = true
		return 0, false
	case 0x18, 0x1A:
		p.Reset()
		return 0, false
	}

	switch p.state {
	case StateOscString:
		if b == 0x07 { // BEL terminator (xterm convention)
			p.terminateString(emit)
			return 0, false
		}
		if b <= 0x06 || (b >= 0x08 && b <= 0x1F) {
			return 0, false
		}
		p.appendPayload(b, p.oscLimit)
	case StateDcsPassthrough:
		if b <= 0x1F {
			return 0, false
		}
		p.appendPayload(b, p.dcsLimit)
	case StateDcsIgnore, StateSosPmApcString:
		if p.state == StateSosPmApcString {
			if !(b <= 0x1F) {
				p.appendPayload(b, p.dcsLimit)
			}
		}
		// DcsIgnore: discard everything, just waiting for ST.
	}
	return 0, false
}

func (p *Parser) appendPayload(b byte, limit int) {
	if len(p.payload) >= limit {
		p.truncated = true
		return
	}
	p.payload = append(p.payload, b)
}

func (p *Parser) terminateString(emit func(Token)) {
	switch p.state {
	case StateOscString:
		id, rest := splitOscID(p.payload)
		emit(Token{Kind: TokenOscData, ID: id, Payload: rest})
	case StateDcsPassthrough:
		vals, _ := p.params.Snapshot()
		inter := append([]byte(nil), p.intermediates...)
		emit(Token{
			Kind:          TokenDcsData,
			Final:         p.dcsFinal,
			Intermediates: inter,
			Params:        vals,
			Private:       p.private,
			Payload:       append([]byte(nil), p.payload...),
		})
	case StateDcsIgnore:
		// dropped silently
	case StateSosPmApcString:
		emit(Token{Kind: TokenSosPmApcData, Control: p.intro, Payload: append([]byte(nil), p.payload...)})
	}
	p.Reset()
}

// splitOscID parses the leading "<digits>;" id prefix off an OSC payload,
// per ECMA-48/xterm OSC framing. If there is no numeric prefix the whole
// payload is returned with id -1.
func splitOscID(payload []byte) (int64, []byte) {
	i := 0
	for i < len(payload) && payload[i] >= '0' && payload[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1, payload
	}
	var id int64
	for _, c := range payload[:i] {
		id = id*10 + int64(c-'0')
	}
	if i < len(payload) && payload[i] == ';' {
		i++
	}
	return id, payload[i:]
}
