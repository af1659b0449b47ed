package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atnchile/portal/pkg/sanitizer"
)

func TestSingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Juana Pérez", want: "Juana Pérez"},
		{name: "trims and folds", input: "  Juana \t\n  Pérez  ", want: "Juana Pérez"},
		{name: "strips tags", input: "<b>Juana</b> <i>Pérez</i>", want: "Juana Pérez"},
		{name: "drops script content", input: "Hola<script>alert(1)</script>", want: "Hola"},
		{name: "keeps entities as text", input: "Tom &amp; Jerry <br>", want: "Tom & Jerry"},
		{name: "keeps ampersand", input: "Pérez & Cía", want: "Pérez & Cía"},
		{name: "control chars", input: "Ju\x00ana\x1b", want: "Juana"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.SingleLine(tt.input))
		})
	}
}

func TestMultiLine(t *testing.T) {
	t.Parallel()

	input := "  Cambio de nombre   legal.\r\n\r\n\r\n\r\nAdjunto   <a href=\"x\">certificado</a>.  \n"
	assert.Equal(t, "Cambio de nombre legal.\n\nAdjunto certificado.", sanitizer.MultiLine(input))
	assert.Equal(t, "uno\ndos", sanitizer.MultiLine("uno\rdos"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Coreó", sanitizer.Truncate("Coreógrafo", 5))
	assert.Equal(t, "abc", sanitizer.Truncate("abc", 10))
	assert.Equal(t, "abc", sanitizer.Truncate("abc", -1))
	assert.Equal(t, "", sanitizer.Truncate("abc", 0))
}

func TestComposeAndApply(t *testing.T) {
	t.Parallel()

	shout := sanitizer.Compose(sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "HOLA", shout("  hola "))
	assert.Equal(t, "hola", sanitizer.Apply("  hola  ", sanitizer.Trim))
	assert.Equal(t, 3, sanitizer.Apply(1, func(i int) int { return i + 2 }))
}

func TestSlice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Director", "Guionista"}, sanitizer.Slice([]string{" Director ", "", "<b></b>", "Guionista"}, sanitizer.SingleLine))
	assert.Nil(t, sanitizer.Slice(nil, sanitizer.Trim))
	assert.Empty(t, sanitizer.Slice([]string{" "}, sanitizer.Trim))
}

func TestStripHTMLFastPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sin marcas", sanitizer.StripHTML("sin marcas"))
	assert.Equal(t, "a  b", sanitizer.StripHTML("a <p></p> b"))
}
