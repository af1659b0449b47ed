package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atnchile/portal/pkg/rut"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"check only", "5", "-5"},
		{"body 1", "52", "5-2"},
		{"body 2", "123", "12-3"},
		{"body 3", "1234", "123-4"},
		{"body 4", "12345", "1.234-5"},
		{"body 7", "12345678", "1.234.567-8"},
		{"body 8", "123456785", "12.345.678-5"},
		{"already formatted", "12.345.678-5", "12.345.678-5"},
		{"misplaced separators", "1.2345.67-8-5", "12.345.678-5"},
		{"keeps k", "10000013k", "10.000.013-k"},
		{"drops other characters", "12a34 5x6-7", "123.456-7"},
		{"only garbage", "abc.-", ""},
		{"multibyte runes", "12ñ34é5", "1.234-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rut.Format(tt.input))
		})
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "1", "12", "123456785", "12.345.678-5", "k", "1k2k3", "--..", "7.654.321-6", "98765432109"}
	for _, in := range inputs {
		once := rut.Format(in)
		assert.Equal(t, once, rut.Format(once), in)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"123456785", "12.345.678-5", "12345678-0", "6k", "10.000.013-K", "5", "0-0"}
	for _, in := range inputs {
		formatted := rut.Format(in)
		assert.Equal(t,
			rut.IsValid(rut.Normalize(in)),
			rut.IsValid(rut.Normalize(formatted)),
			in,
		)
	}
}
