package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atnchile/portal/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	rule := validator.Required("motivo", "texto")
	assert.True(t, rule.Check())
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	assert.Equal(t, map[string]any{"field": "motivo"}, rule.Error.TranslationValues)

	assert.False(t, validator.Required("motivo", "").Check())
	assert.False(t, validator.Required("motivo", " \n\t").Check())
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLen("obs", "ñandú", 5).Check())
	assert.False(t, validator.MaxLen("obs", "ñandúes", 5).Check())
	assert.Equal(t, 5, validator.MaxLen("obs", "", 5).Error.TranslationValues["max"])
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	opts := []string{"socio-vigente", "representante-legal"}
	assert.True(t, validator.OneOf("tipoUsuario", "socio-vigente", opts).Check())
	assert.False(t, validator.OneOf("tipoUsuario", "otro", opts).Check())
	assert.False(t, validator.OneOf("tipoUsuario", "", opts).Check())

	assert.True(t, validator.AllOf("ambitos", []string{"Audiovisual"}, []string{"Audiovisual", "Dramático"}).Check())
	assert.True(t, validator.AllOf("ambitos", nil, []string{"Audiovisual"}).Check())
	assert.False(t, validator.AllOf("ambitos", []string{"Musical"}, []string{"Audiovisual"}).Check())
}

func TestRequiredSlice(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.RequiredSlice("campos", []string{"nombre"}).Check())
	assert.False(t, validator.RequiredSlice[string]("campos", nil).Check())
	assert.Equal(t, "validation.required_selection", validator.RequiredSlice[int]("x", nil).Error.TranslationKey)
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"socio@atn.cl", "a.b+c@sub.example.com", " padded@example.cl "}
	for _, v := range valid {
		assert.True(t, validator.ValidEmail("email", v).Check(), v)
	}

	invalid := []string{"", "plain", "a@b", "a@.cl", "a@b..cl", "Name <a@b.cl>", "@b.cl", "a b@c.cl"}
	for _, v := range invalid {
		assert.False(t, validator.ValidEmail("email", v).Check(), v)
	}
}

func TestValidPhone(t *testing.T) {
	t.Parallel()

	valid := []string{"+56912345678", "912345678", "+56 9 1234 5678", "(2) 2345-6789"}
	for _, v := range valid {
		assert.True(t, validator.ValidPhone("telefono", v).Check(), v)
	}

	invalid := []string{"", "1234", "+56-9-abc", "++56912345678"}
	for _, v := range invalid {
		assert.False(t, validator.ValidPhone("telefono", v).Check(), v)
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidDate("fecha", "01-03-2025").Check())
	assert.True(t, validator.ValidDate("fecha", "29-02-2024").Check())
	assert.False(t, validator.ValidDate("fecha", "29-02-2025").Check())
	assert.False(t, validator.ValidDate("fecha", "31-04-2025").Check())
	assert.False(t, validator.ValidDate("fecha", "2025-03-01").Check())
	assert.False(t, validator.ValidDate("fecha", "1-3-2025").Check())
	assert.False(t, validator.ValidDate("fecha", "").Check())
}

func TestDateNotBefore(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.DateNotBefore("fechaTermino", "10-03-2025", "01-03-2025").Check())
	assert.True(t, validator.DateNotBefore("fechaTermino", "01-03-2025", "01-03-2025").Check())
	assert.False(t, validator.DateNotBefore("fechaTermino", "28-02-2025", "01-03-2025").Check())
	assert.True(t, validator.DateNotBefore("fechaTermino", "bad", "01-03-2025").Check())

	rule := validator.DateNotBefore("fechaTermino", "28-02-2025", "01-03-2025")
	assert.Equal(t, "01-03-2025", rule.Error.TranslationValues["start"])
}

func TestValidRUT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		ok      bool
		wantKey string
	}{
		{"12.345.678-5", true, "validation.rut_invalid"},
		{"123456785", true, "validation.rut_invalid"},
		{"12.345.678-0", false, "validation.rut_invalid"},
		{"", false, "validation.required"},
		{"12.34A.678-5", false, "validation.rut_malformed"},
		{"5", false, "validation.rut_malformed"},
	}

	for _, tt := range tests {
		rule := validator.ValidRUT("rut", tt.value)
		assert.Equal(t, tt.ok, rule.Check(), tt.value)
		assert.Equal(t, tt.wantKey, rule.Error.TranslationKey, tt.value)
		assert.Equal(t, "rut", rule.Error.Field)
	}
}
