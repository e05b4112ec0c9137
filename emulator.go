package vtcore

import (
	"sync"

	"github.com/rs/zerolog"
)

// Emulator is the façade tying together the parser, the two screen
// buffers, cursor/mode/charset state, and the provider hooks (§3, §4.5,
// §5). It is the only exported entry point a host program needs: feed it
// PTY bytes, read back a Snapshot or the encoded bytes for a key event.
//
// All mutating methods take Emulator's own lock; Snapshot takes a read
// lock, so a renderer goroutine can safely poll it while a reader
// goroutine keeps calling Feed.
type Emulator struct {
	mu sync.RWMutex

	rows, cols int

	primary   *Buffer
	alternate *Buffer
	usingAlt  bool

	cursor             Cursor
	savedPrimary       SavedCursor
	savedAlternate     SavedCursor
	scrollRegion       ScrollRegion
	modes              *Modes
	charsets           CharsetState
	template           CellTemplate
	palette            *Palette
	defaultFg          Color
	defaultBg          Color
	activeHyperlink    *Hyperlink
	sixelSlots         []SixelSlot

	parser *Parser

	cfg         Config
	diagnostics zerolog.Logger

	titleStack []string
}

// New constructs an Emulator. It is the only fallible entry point in the
// package (§7): every other operation, however malformed its input,
// absorbs the problem instead of returning an error.
func New(opts ...Option) (*Emulator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rows <= 0 || cfg.cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if cfg.scrollbackCapacity < 0 {
		return nil, ErrInvalidScrollbackCapacity
	}

	e := &Emulator{
		rows:        cfg.rows,
		cols:        cfg.cols,
		primary:     NewBufferWithStorage(cfg.rows, cfg.cols, NewRingScrollback(cfg.scrollbackCapacity)),
		alternate:   NewBuffer(cfg.rows, cfg.cols),
		modes:       NewModes(),
		charsets:    NewCharsetState(),
		template:    NewCellTemplate(),
		palette:     NewPalette(),
		defaultFg:   TrueColor(229, 229, 229),
		defaultBg:   TrueColor(0, 0, 0),
		cursor:      NewCursor(),
		parser:      NewParser(cfg.oscLimit, cfg.dcsLimit),
		cfg:         cfg,
		diagnostics: cfg.diagnostics,
	}
	e.scrollRegion = fullScrollRegion(cfg.rows)
	return e, nil
}

func (e *Emulator) activeBuffer() *Buffer {
	if e.usingAlt {
		return e.alternate
	}
	return e.primary
}

// Feed parses data and dispatches every resulting token, mutating screen
// state and writing any generated response bytes to the configured
// ResponseProvider (§4.5, §5: Feed is the single entry point a reader
// goroutine drives; the Emulator itself starts no goroutines).
func (e *Emulator) Feed(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.recording != nil {
		e.cfg.recording.Record(data)
	}

	for _, b := range data {
		e.parser.Step(b, e.dispatch)
	}
}

// Resize changes the grid dimensions of both buffers, resets the scroll
// region to the full screen and clamps the cursor into the new bounds
// (§4.5 resize semantics).
func (e *Emulator) Resize(rows, cols int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if rows <= 0 || cols <= 0 {
		return
	}
	e.primary.Resize(rows, cols)
	e.alternate.Resize(rows, cols)
	e.rows, e.cols = rows, cols
	e.scrollRegion = fullScrollRegion(rows)

	if e.cursor.Row >= rows {
		e.cursor.Row = rows - 1
	}
	if e.cursor.Col >= cols {
		e.cursor.Col = cols - 1
	}
	e.cursor.PendingWrap = false
}

// EncodeKey translates a logical key event into the byte sequence the
// emulated application should receive on its input stream (§4.7 Input
// Encoder), honoring the current DECCKM application-cursor-keys mode.
func (e *Emulator) EncodeKey(ev KeyEvent) []byte {
	e.mu.RLock()
	appCursor := e.modes.Is(ModeDECCKM)
	bracketPaste := e.modes.Is(ModeBracketPaste)
	e.mu.RUnlock()
	return encodeKey(ev, appCursor, bracketPaste)
}

// EncodePaste wraps text in bracketed-paste markers when that mode is
// active, otherwise returns it unchanged (§4.7).
func (e *Emulator) EncodePaste(text string) []byte {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return encodePaste(text, e.modes.Is(ModeBracketPaste))
}

// ScrollbackLen reports how many lines are currently held in the active
// buffer's scrollback.
func (e *Emulator) ScrollbackLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activeBuffer().ScrollbackLen()
}

// ModeEnabled reports whether the given mode is currently set. Intended for
// host programs that want to surface mode state (bracketed paste, mouse
// reporting, alt screen) in their own chrome, never the emulated grid.
func (e *Emulator) ModeEnabled(m Mode) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.modes.Is(m)
}

func (e *Emulator) respond(data []byte) {
	if e.cfg.response != nil {
		_, _ = e.cfg.response.Write(data)
	}
}
