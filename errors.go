package vtcore

import "errors"

// Construction-time sentinel errors (§7 Error Handling Design). Runtime
// parsing never errors — malformed escape sequences are absorbed per
// §4.2/§4.3 and never surface as Go errors; these only guard the values a
// caller can pass when building an Emulator.
var (
	ErrInvalidDimensions         = errors.New("vtcore: rows and cols must be positive")
	ErrInvalidScrollbackCapacity = errors.New("vtcore: scrollback capacity must be non-negative")
)
