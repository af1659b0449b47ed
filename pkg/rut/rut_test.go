package rut_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atnchile/portal/pkg/rut"
)

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body string
		want byte
	}{
		{"12345678", '5'},
		{"11111111", '1'},
		{"22222222", '2'},
		{"10000013", 'K'},
		{"10000004", '0'},
		{"6", 'K'},
		{"7", '8'},
		{"5", '1'},
		{"0", '0'},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			t.Parallel()
			got, err := rut.CheckDigit(tt.body)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), string(got))
		})
	}

	t.Run("rejects non-digit body", func(t *testing.T) {
		t.Parallel()
		_, err := rut.CheckDigit("12a45")
		assert.ErrorIs(t, err, rut.ErrMalformedBody)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()
		_, err := rut.CheckDigit("")
		assert.ErrorIs(t, err, rut.ErrMalformedBody)
	})

	t.Run("leading zeros do not change the result", func(t *testing.T) {
		t.Parallel()
		a, err := rut.CheckDigit("12345678")
		require.NoError(t, err)
		b, err := rut.CheckDigit("0012345678")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"compact", "123456785", nil},
		{"with dash", "12345678-5", nil},
		{"display form", "12.345.678-5", nil},
		{"upper K", "6-K", nil},
		{"lower k", "6-k", nil},
		{"long K", "10.000.013-K", nil},
		{"long lower k", "10000013k", nil},
		{"zero check", "10.000.004-0", nil},
		{"surrounding whitespace", "  12.345.678-5 ", nil},
		{"separators anywhere", "1-2.3-4.5-6.7-8-5", nil},
		{"wrong check digit", "12345678-0", rut.ErrCheckDigitMismatch},
		{"wrong check letter", "12345678-K", rut.ErrCheckDigitMismatch},
		{"unknown check char", "12345678-X", rut.ErrCheckDigitMismatch},
		{"empty", "", rut.ErrEmptyInput},
		{"whitespace", " \t ", rut.ErrEmptyInput},
		{"single char", "5", rut.ErrMalformedBody},
		{"only separators", ".-.", rut.ErrMalformedBody},
		{"letters in body", "12A45678-5", rut.ErrMalformedBody},
		{"inner space", "12 345 678-5", rut.ErrMalformedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := rut.Validate(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, rut.IsValid(tt.input))
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, rut.IsValid(tt.input))
		})
	}
}

func TestIsMalformed(t *testing.T) {
	t.Parallel()

	assert.True(t, rut.IsMalformed(rut.Validate("")))
	assert.True(t, rut.IsMalformed(rut.Validate("x")))
	assert.False(t, rut.IsMalformed(rut.Validate("12345678-0")))
	assert.False(t, rut.IsMalformed(nil))
}

func TestValidateAcceptsEveryComputedRUT(t *testing.T) {
	t.Parallel()

	for body := 1; body < 100_000_000; body += 7_654_321 {
		digits := strconv.Itoa(body)
		check, err := rut.CheckDigit(digits)
		require.NoError(t, err)

		compact := digits + string(check)
		display := rut.Format(compact)

		assert.True(t, rut.IsValid(compact), compact)
		assert.True(t, rut.IsValid(display), display)
		assert.True(t, rut.IsValid(strings.ToLower(display)), display)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("exposes parts", func(t *testing.T) {
		t.Parallel()
		r, err := rut.Parse("10.000.013-k")
		require.NoError(t, err)
		assert.Equal(t, "10000013", r.Body())
		assert.Equal(t, byte('K'), r.Verifier())
		assert.Equal(t, "10000013K", r.Compact())
		assert.Equal(t, "10.000.013-K", r.String())
		assert.False(t, r.IsZero())
	})

	t.Run("drops leading zeros", func(t *testing.T) {
		t.Parallel()
		r, err := rut.Parse("00.012.345.678-5")
		require.NoError(t, err)
		assert.Equal(t, "12.345.678-5", r.String())
	})

	t.Run("zero body", func(t *testing.T) {
		t.Parallel()
		r, err := rut.Parse("0-0")
		require.NoError(t, err)
		assert.Equal(t, "0", r.Body())
		assert.Equal(t, "0-0", r.String())
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()
		var r rut.RUT
		assert.True(t, r.IsZero())
		assert.Empty(t, r.Compact())
		assert.Empty(t, r.String())
	})

	t.Run("text round trip", func(t *testing.T) {
		t.Parallel()
		var r rut.RUT
		require.NoError(t, r.UnmarshalText([]byte("123456785")))
		text, err := r.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "12.345.678-5", string(text))
	})

	t.Run("unmarshal rejects invalid", func(t *testing.T) {
		t.Parallel()
		var r rut.RUT
		err := r.UnmarshalText([]byte("12.345.678-0"))
		assert.ErrorIs(t, err, rut.ErrCheckDigitMismatch)
		assert.True(t, r.IsZero())
	})

	t.Run("must parse panics on invalid", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { rut.MustParse("12.345.678-0") })
		assert.NotPanics(t, func() { rut.MustParse("12.345.678-5") })
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123456785", rut.Normalize("12.345.678-5"))
	assert.Equal(t, "123456785", rut.Normalize("1-2.3-4.5.6-7.8-5"))
	assert.Equal(t, "", rut.Normalize(".-"))
}
