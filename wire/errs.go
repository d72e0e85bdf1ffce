package wire

import (
	"errors"
)

var (
	// ErrMalformed reports truncated input, an invalid tag id or an
	// otherwise impossible payload.
	ErrMalformed = errors.New("malformed nbt")
	// ErrBudgetExceeded reports that decoding would exceed the
	// Accounter quota.
	ErrBudgetExceeded = errors.New("nbt budget exceeded")
	// ErrDepthExceeded reports lists or compounds nested deeper than
	// MaxDepth.
	ErrDepthExceeded = errors.New("nbt nesting too deep")
	// ErrStringTooLong is returned when encoding a string whose
	// modified UTF-8 form exceeds 65535 bytes.
	ErrStringTooLong = errors.New("string too long for nbt")
	// ErrNotCompound is returned when a root is required to be a
	// compound and is not.
	ErrNotCompound = errors.New("root tag must be a compound")
)
