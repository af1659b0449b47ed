package rut

import (
	"fmt"
	"strings"
)

var separators = strings.NewReplacer(".", "", "-", "")

// RUT is a parsed and verified Chilean national identifier.
// The zero value is not a valid RUT; use IsZero to detect it.
type RUT struct {
	body  string
	check byte
}

// Normalize removes every '.' and '-' from input.
func Normalize(input string) string {
	return separators.Replace(input)
}

// CheckDigit computes the check character for a body of decimal digits
// using the modulo 11 scheme. The result is one of '0'-'9' or 'K'.
func CheckDigit(body string) (byte, error) {
	if body == "" {
		return 0, fmt.Errorf("%w: empty body", ErrMalformedBody)
	}

	sum, factor := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-digit %q in body", ErrMalformedBody, c)
		}
		sum += int(c-'0') * factor
		if factor++; factor > 7 {
			factor = 2
		}
	}

	switch v := 11 - sum%11; v {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + v), nil
	}
}

// Parse verifies input and returns the RUT it denotes.
// Separators are optional and the check character is case-insensitive.
func Parse(input string) (RUT, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return RUT{}, ErrEmptyInput
	}

	clean := Normalize(input)
	if len(clean) < 2 {
		return RUT{}, fmt.Errorf("%w: %q is too short", ErrMalformedBody, clean)
	}

	body, check := clean[:len(clean)-1], upper(clean[len(clean)-1])
	expected, err := CheckDigit(body)
	if err != nil {
		return RUT{}, err
	}
	if check != expected {
		return RUT{}, fmt.Errorf("%w: got %q, want %q", ErrCheckDigitMismatch, check, expected)
	}

	if body = strings.TrimLeft(body, "0"); body == "" {
		body = "0"
	}
	return RUT{body: body, check: expected}, nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests and fixtures.
func MustParse(input string) RUT {
	r, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate returns nil when input is a valid RUT, ErrCheckDigitMismatch when
// it is well formed but its check character is wrong, and ErrEmptyInput or
// ErrMalformedBody when it cannot be read as a RUT.
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// IsValid reports whether input is a valid RUT.
func IsValid(input string) bool {
	return Validate(input) == nil
}

// Body returns the digits before the check character without leading zeros.
func (r RUT) Body() string { return r.body }

// Verifier returns the upper-case check character.
func (r RUT) Verifier() byte { return r.check }

// IsZero reports whether r is the zero value.
func (r RUT) IsZero() bool { return r.body == "" }

// Compact returns the RUT without separators, e.g. "123456785".
func (r RUT) Compact() string {
	if r.IsZero() {
		return ""
	}
	return r.body + string(r.check)
}

// String returns the display form, e.g. "12.345.678-5".
func (r RUT) String() string {
	return Format(r.Compact())
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (r RUT) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any accepted textual form is allowed.
func (r *RUT) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func upper(c byte) byte {
	if c == 'k' {
		return 'K'
	}
	return c
}
