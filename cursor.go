package vtcore

// CursorStyle selects how the renderer should draw the cursor (DECSCUSR).
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks position, pending-wrap state, and rendering style
// (§3 Cursor). Row/Col are 0-based absolute grid coordinates; when origin
// mode is set, CUP/VPA row arguments are offset by the scroll region top.
type Cursor struct {
	Row, Col int
	// PendingWrap is true immediately after a Print fills the last column
	// while DECAWM is set: the wrap to the next line is deferred until the
	// following printable character arrives, so a cursor query issued in
	// between still reports the last column (§4.4 "pending wrap").
	PendingWrap bool
	Style       CursorStyle
	Visible     bool
}

// NewCursor returns a cursor at (0,0), visible, blinking block.
func NewCursor() Cursor {
	return Cursor{Style: CursorStyleBlinkingBlock, Visible: true}
}

// SavedCursor is the full snapshot taken by DECSC / the implicit save on
// switching to the alternate screen, and restored by DECRC (§3
// SavedCursor).
type SavedCursor struct {
	Row, Col   int
	Style      StyleAttr
	OriginMode bool
	Charsets   CharsetState
}

// CellTemplate is the style newly printed and erased cells are stamped
// with; it tracks the active SGR state (§3 CellTemplate).
type CellTemplate struct {
	Style StyleAttr
}

// NewCellTemplate returns a template at the default SGR state.
func NewCellTemplate() CellTemplate {
	return CellTemplate{Style: DefaultStyle}
}
