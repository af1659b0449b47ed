package rut

import "errors"

var (
	// ErrEmptyInput is returned when the input is empty or contains only whitespace.
	ErrEmptyInput = errors.New("rut: empty input")

	// ErrMalformedBody is returned when the input is too short or its body is not all decimal digits.
	ErrMalformedBody = errors.New("rut: malformed body")

	// ErrCheckDigitMismatch is returned when the trailing check character does not match the body.
	ErrCheckDigitMismatch = errors.New("rut: check digit mismatch")

	// ErrCursorUnsupported is logged when a bound field rejects programmatic cursor placement.
	ErrCursorUnsupported = errors.New("rut: field does not support cursor placement")
)

// IsMalformed reports whether err means the input could not be read as a RUT at all.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrMalformedBody)
}
