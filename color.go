package vtcore

// ColorKind discriminates the Color sum type (§3 StyleAttr: "a color is
// either the inherited default, one of the 256 palette indices, or a
// direct 24-bit value").
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorTrueColor
)

// Color is a small sum type: the terminal's inherited default, an index
// into the 256-color palette, or a direct 24-bit RGB triple. Zero value is
// ColorDefault.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// DefaultColor is the zero Color: "use whatever the renderer considers the
// default foreground/background".
var DefaultColor = Color{Kind: ColorDefault}

// Indexed builds a Color selecting palette slot i (0-255).
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// TrueColor builds a direct 24-bit Color.
func TrueColor(r, g, b uint8) Color {
	return Color{Kind: ColorTrueColor, R: r, G: g, B: b}
}

// RGB resolves c against palette to a concrete 24-bit triple. ColorDefault
// resolves to def, the caller-supplied default (foreground or background).
func (c Color) RGB(palette *Palette, def Color) (r, g, b uint8) {
	switch c.Kind {
	case ColorTrueColor:
		return c.R, c.G, c.B
	case ColorIndexed:
		return palette.At(c.Index)
	default:
		if def.Kind == ColorDefault {
			return 0, 0, 0
		}
		return def.RGB(palette, DefaultColor)
	}
}

// Palette is the 256-color table: 16 ANSI colors (with their bright
// variants), a 6x6x6 color cube, and a 24-step grayscale ramp, matching
// the standard xterm layout.
type Palette struct {
	entries [256][3]uint8
}

// NewPalette builds the standard xterm 256-color palette.
func NewPalette() *Palette {
	p := &Palette{}
	ansi := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range ansi {
		p.entries[i] = c
	}
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.entries[idx] = [3]uint8{steps[r], steps[g], steps[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p.entries[232+i] = [3]uint8{v, v, v}
	}
	return p
}

// At returns the RGB triple stored at palette index i.
func (p *Palette) At(i uint8) (r, g, b uint8) {
	e := p.entries[i]
	return e[0], e[1], e[2]
}

// Set overrides palette index i, used by OSC 4 dynamic palette redefinition.
func (p *Palette) Set(i uint8, r, g, b uint8) {
	p.entries[i] = [3]uint8{r, g, b}
}
