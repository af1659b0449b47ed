package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/atnchile/portal/pkg/validator"
)

// ValidationError holds user-facing messages per field. It's based on
// url.Values to leverage built-in string slice handling.
type ValidationError url.Values

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Translate looks up a translation key with name, value arguments.
type Translate func(key string, args ...string) string

// Localize turns rule failures into messages. Errors without a translation
// key keep their English message.
func Localize(verrs validator.ValidationErrors, translate Translate) ValidationError {
	out := NewValidationError()
	for _, ve := range verrs {
		if ve.TranslationKey == "" || translate == nil {
			out.Add(ve.Field, ve.Message)
			continue
		}
		args := make([]string, 0, 2*len(ve.TranslationValues))
		for name, value := range ve.TranslationValues {
			args = append(args, name, fmt.Sprint(value))
		}
		out.Add(ve.Field, translate(ve.TranslationKey, args...))
	}
	return out
}
