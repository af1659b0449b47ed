package validator

import (
	"fmt"
	"slices"
)

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", options),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": options,
			},
		},
	}
}

// AllOf validates that every element of values is one of options.
func AllOf[T comparable](field string, values []T, options []T) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !slices.Contains(options, v) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must only contain: %v", options),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": options,
			},
		},
	}
}
