package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth reports the terminal column width of r: 0 for combining marks
// and most control codes, 1 for ordinary characters, 2 for East-Asian-wide
// and emoji codepoints. ASCII printable bytes are fast-pathed since they
// are by far the common case on the hot print path.
func runeWidth(r rune) int {
	if r >= 0x20 && r < 0x7F {
		return 1
	}
	return uniwidth.RuneWidth(r)
}

// isWideRune reports whether r occupies two columns.
func isWideRune(r rune) bool {
	return runeWidth(r) == 2
}

// StringWidth sums the column width of every rune in s, exposed for
// callers that need to measure a string outside the print path (title
// strings, clipboard payload echoes, tests).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
