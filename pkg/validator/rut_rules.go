package validator

import (
	"errors"

	"github.com/atnchile/portal/pkg/rut"
)

// ValidRUT validates a Chilean RUT in display or compact form. Empty input
// reports validation.required, unreadable input validation.rut_malformed and
// a wrong check digit validation.rut_invalid.
func ValidRUT(field, value string) Rule {
	err := rut.Validate(value)

	verr := ValidationError{
		Field:          field,
		Message:        "must be a valid RUT",
		TranslationKey: "validation.rut_invalid",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
	switch {
	case errors.Is(err, rut.ErrEmptyInput):
		verr.Message = "field is required"
		verr.TranslationKey = "validation.required"
	case errors.Is(err, rut.ErrMalformedBody):
		verr.Message = "must be a RUT such as 12.345.678-5"
		verr.TranslationKey = "validation.rut_malformed"
	}

	return Rule{
		Check: func() bool { return err == nil },
		Error: verr,
	}
}
