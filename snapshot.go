package vtcore

import "fmt"

// SnapshotDetail selects how much detail a Snapshot carries (§4.8
// Renderer-facing Snapshot).
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only, no styling.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text split into same-style runs.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a read-only capture of one screen's worth of terminal state,
// built without holding any internal emulator lock once returned.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink  *SnapshotLink `json:"hyperlink,omitempty"`
}

type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink  *SnapshotLink `json:"hyperlink,omitempty"`
	Wide       bool          `json:"wide,omitempty"`
	WideCont   bool          `json:"wide_cont,omitempty"`
}

type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

type SnapshotLink struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri"`
}

// Snapshot captures e's current active buffer at the requested detail
// level. Safe to call concurrently with Feed; the Emulator takes its own
// read lock internally.
func (e *Emulator) Snapshot(detail SnapshotDetail) *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := &Snapshot{
		Size: SnapshotSize{Rows: e.rows, Cols: e.cols},
		Cursor: SnapshotCursor{
			Row:     e.cursor.Row,
			Col:     e.cursor.Col,
			Visible: e.cursor.Visible,
			Style:   cursorStyleToString(e.cursor.Style),
		},
		Lines: make([]SnapshotLine, e.rows),
	}

	for row := 0; row < e.rows; row++ {
		snap.Lines[row] = e.snapshotLine(row, detail)
	}
	return snap
}

func (e *Emulator) snapshotLine(row int, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{Text: e.activeBuffer().LineContent(row)}

	switch detail {
	case SnapshotDetailStyled:
		line.Segments = e.lineToSegments(row)
	case SnapshotDetailFull:
		line.Cells = e.lineToCells(row)
	}
	return line
}

func (e *Emulator) lineToSegments(row int) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var currentChars []rune

	buf := e.activeBuffer()
	for col := 0; col < e.cols; col++ {
		cell := buf.Cell(row, col)
		if cell == nil || cell.IsWideCont() {
			continue
		}

		fg := colorToHex(cell.Style.Fg, e.palette, e.defaultFg)
		bg := colorToHex(cell.Style.Bg, e.palette, e.defaultBg)
		attrs := cellAttrsToSnapshot(cell)
		link := cellHyperlinkToSnapshot(cell)

		if current == nil || !segmentMatches(current, fg, bg, attrs, link) {
			if current != nil && len(currentChars) > 0 {
				current.Text = string(currentChars)
				segments = append(segments, *current)
			}
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attributes: attrs, Hyperlink: link}
			currentChars = nil
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		currentChars = append(currentChars, ch)
	}

	if current != nil && len(currentChars) > 0 {
		current.Text = string(currentChars)
		segments = append(segments, *current)
	}
	return segments
}

func (e *Emulator) lineToCells(row int) []SnapshotCell {
	buf := e.activeBuffer()
	cells := make([]SnapshotCell, 0, e.cols)

	for col := 0; col < e.cols; col++ {
		cell := buf.Cell(row, col)
		if cell == nil {
			cells = append(cells, SnapshotCell{Char: " ", Fg: colorToHex(DefaultColor, e.palette, e.defaultFg), Bg: colorToHex(DefaultColor, e.palette, e.defaultBg)})
			continue
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}

		cells = append(cells, SnapshotCell{
			Char:       string(ch),
			Fg:         colorToHex(cell.Style.Fg, e.palette, e.defaultFg),
			Bg:         colorToHex(cell.Style.Bg, e.palette, e.defaultBg),
			Attributes: cellAttrsToSnapshot(cell),
			Hyperlink:  cellHyperlinkToSnapshot(cell),
			Wide:       cell.IsWide(),
			WideCont:   cell.IsWideCont(),
		})
	}
	return cells
}

func segmentMatches(seg *SnapshotSegment, fg, bg string, attrs SnapshotAttrs, link *SnapshotLink) bool {
	if seg.Fg != fg || seg.Bg != bg || seg.Attributes != attrs {
		return false
	}
	if seg.Hyperlink == nil && link == nil {
		return true
	}
	if seg.Hyperlink == nil || link == nil {
		return false
	}
	return seg.Hyperlink.URI == link.URI && seg.Hyperlink.ID == link.ID
}

// colorToHex resolves c to a concrete RGB hex string, falling back to def
// (the emulator's OSC 10/11-configurable default foreground or background)
// when c is ColorDefault.
func colorToHex(c Color, palette *Palette, def Color) string {
	r, g, b := c.RGB(palette, def)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func cellAttrsToSnapshot(cell *Cell) SnapshotAttrs {
	f := cell.Style.Flags
	return SnapshotAttrs{
		Bold:          f&StyleBold != 0,
		Dim:           f&StyleDim != 0,
		Italic:        f&StyleItalic != 0,
		Underline:     f&(StyleUnderline|StyleDoubleUnderline|StyleCurlyUnderline) != 0,
		Blink:         f&(StyleBlinkSlow|StyleBlinkFast) != 0,
		Reverse:       f&StyleReverse != 0,
		Hidden:        f&StyleHidden != 0,
		Strikethrough: f&StyleStrike != 0,
	}
}

func cellHyperlinkToSnapshot(cell *Cell) *SnapshotLink {
	if cell.Hyperlink == nil {
		return nil
	}
	return &SnapshotLink{ID: cell.Hyperlink.ID, URI: cell.Hyperlink.URI}
}

func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorStyleBlinkingBlock, CursorStyleSteadyBlock:
		return "block"
	case CursorStyleBlinkingUnderline, CursorStyleSteadyUnderline:
		return "underline"
	case CursorStyleBlinkingBar, CursorStyleSteadyBar:
		return "bar"
	default:
		return "block"
	}
}
