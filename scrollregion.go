package vtcore

// ScrollRegion is the DECSTBM top/bottom margin pair constraining scroll
// and cursor movement (§3 ScrollRegion). Top and Bottom are 0-based,
// inclusive row indices into the active buffer.
type ScrollRegion struct {
	Top    int
	Bottom int
}

// fullScrollRegion returns the region spanning the whole screen of the
// given height, the state after a resize or DECSTBM with no parameters.
func fullScrollRegion(height int) ScrollRegion {
	return ScrollRegion{Top: 0, Bottom: height - 1}
}

// Contains reports whether row falls inside the region.
func (s ScrollRegion) Contains(row int) bool {
	return row >= s.Top && row <= s.Bottom
}

// IsFull reports whether the region spans the entire buffer of the given
// height, the common case that lets callers take a cheaper full-screen
// scroll path.
func (s ScrollRegion) IsFull(height int) bool {
	return s.Top == 0 && s.Bottom == height-1
}
