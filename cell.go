package vtcore

// CellFlags carries per-cell bits that are not SGR attributes: dirty
// tracking and the wide-character pairing markers (§3, §4.4).
type CellFlags uint8

const (
	CellFlagDirty CellFlags = 1 << iota
	CellFlagWide
	CellFlagWideCont
)

// Hyperlink associates a cell with a clickable link (OSC 8).
type Hyperlink struct {
	ID  string
	URI string
}

// Cell stores one grid position: its codepoint, its style, and the
// wide-character pairing state. A wide character occupies two adjacent
// cells: the first carries the glyph and CellFlagWide, the second is
// blank with CellFlagWideCont set (§4.4 "wide_cont").
type Cell struct {
	Char      rune
	Style     StyleAttr
	Flags     CellFlags
	Hyperlink *Hyperlink
}

// NewCell returns a blank cell with default style.
func NewCell() Cell {
	return Cell{Char: ' ', Style: DefaultStyle}
}

// Reset restores c to a blank cell with the given template style, clearing
// wide-character and hyperlink state. tmpl normally comes from the
// cursor's CellTemplate so erases paint with the active SGR background.
func (c *Cell) Reset(tmpl StyleAttr) {
	c.Char = ' '
	c.Style = tmpl
	c.Flags = 0
	c.Hyperlink = nil
}

func (c *Cell) HasFlag(f CellFlags) bool { return c.Flags&f != 0 }
func (c *Cell) SetFlag(f CellFlags)      { c.Flags |= f }
func (c *Cell) ClearFlag(f CellFlags)    { c.Flags &^= f }

func (c *Cell) IsDirty() bool   { return c.HasFlag(CellFlagDirty) }
func (c *Cell) MarkDirty()      { c.SetFlag(CellFlagDirty) }
func (c *Cell) ClearDirty()     { c.ClearFlag(CellFlagDirty) }
func (c *Cell) IsWide() bool    { return c.HasFlag(CellFlagWide) }
func (c *Cell) IsWideCont() bool { return c.HasFlag(CellFlagWideCont) }

// Copy returns a value copy of c, including the hyperlink pointer (shared,
// not cloned: hyperlinks are treated as immutable once attached).
func (c *Cell) Copy() Cell {
	return *c
}
