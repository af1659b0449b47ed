// Package validator builds declarative, translation-aware validation for
// portal forms.
//
// Every helper returns a Rule: a Check func paired with a ValidationError
// carrying the field name, an English message and a translation key. Apply
// evaluates rules and aggregates failures into ValidationErrors, which
// implements error and matches ErrValidationFailed with errors.Is.
//
//	err := validator.Apply(
//		validator.ValidRUT("rut", in.RUT),
//		validator.ValidEmail("emailValidacion", in.Email),
//		validator.OneOf("tipoUsuario", in.UserType, userTypes),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// translate verrs[i].TranslationKey for display
//	}
//
// When and Nested keep conditional fields and repeated rows readable
// inside a single Apply call.
package validator
