package validator

// RequiredSlice validates that a slice has at least one element.
func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "select at least one option",
			TranslationKey: "validation.required_selection",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
