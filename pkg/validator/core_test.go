package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atnchile/portal/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("motivo", "cambio de domicilio"),
			validator.ValidEmail("email", "socio@example.cl"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("motivo", ""),
			validator.ValidEmail("email", "nope"),
			validator.Required("detalle", "ok"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"motivo", "email"}, verrs.Fields())
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("detalle"))
		assert.Equal(t, []string{"field is required"}, verrs.Get("motivo"))
		assert.Equal(t, "validation failed: motivo: field is required; email: must be a valid email address", err.Error())
	})

	t.Run("extract through wrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("submit: %w", validator.Apply(validator.Required("x", "")))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validator.When(false, validator.Required("region", "")))
	assert.Len(t, validator.When(true, validator.Required("region", ""), validator.Required("comuna", "")), 2)

	err := validator.Apply(validator.When(false, validator.Required("region", ""))...)
	assert.NoError(t, err)
}

func TestNested(t *testing.T) {
	t.Parallel()

	rules := validator.Nested("exhibiciones[1].", validator.Required("pais", ""))
	err := validator.Apply(rules...)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "exhibiciones[1].pais", verrs[0].Field)
	assert.Equal(t, "exhibiciones[1].pais", verrs[0].TranslationValues["field"])
}
