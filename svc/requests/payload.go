package requests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atnchile/portal/pkg/validator"
)

const (
	maxLine = 200
	maxText = 2000
)

const (
	yes = "si"
	no  = "no"
)

var yesNo = []string{yes, no}

// Payload is the form data of one request type.
type Payload interface {
	// Normalize sanitizes free text and drops fields that do not apply to
	// the options chosen, in place.
	Normalize()
	// Validate reports every rule the form data breaks as validator.ValidationErrors.
	Validate() error
}

// Catalog answers reference data lookups used to validate places.
type Catalog interface {
	HasCountry(country string) bool
	HasCommune(region, commune string) bool
}

// catalogChecker is implemented by payloads holding countries or communes.
type catalogChecker interface {
	catalogRules(c Catalog) []validator.Rule
}

// Decode parses raw as the payload of type t. Unknown fields are rejected.
func Decode(t Type, raw []byte) (Payload, error) {
	info, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	p := info.payload()

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	return p, nil
}

// New returns an empty payload of type t, or nil for unknown types.
func New(t Type) Payload {
	info, ok := registry[t]
	if !ok {
		return nil
	}
	return info.payload()
}

// Check runs Validate and, when c is not nil, the reference data lookups.
func Check(p Payload, c Catalog) error {
	err := p.Validate()
	if c == nil {
		return err
	}
	checker, ok := p.(catalogChecker)
	if !ok {
		return err
	}

	verrs := validator.ExtractValidationErrors(err)
	if err != nil && verrs == nil {
		return err
	}
	if cerr := validator.Apply(checker.catalogRules(c)...); cerr != nil {
		verrs = append(verrs, validator.ExtractValidationErrors(cerr)...)
	}
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

// rule builds a one-off rule for checks no generic validator covers.
func rule(field, key, message string, ok bool, values ...any) validator.Rule {
	tv := map[string]any{"field": field}
	for i := 0; i+1 < len(values); i += 2 {
		if name, isString := values[i].(string); isString {
			tv[name] = values[i+1]
		}
	}
	return validator.Rule{
		Check: func() bool { return ok },
		Error: validator.ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: tv,
		},
	}
}

// line validates an optional single-line value's length.
func line(field, value string) validator.Rule {
	return validator.MaxLen(field, value, maxLine)
}

// text validates an optional free-text value's length.
func text(field, value string) validator.Rule {
	return validator.MaxLen(field, value, maxText)
}

// requiredLine validates a mandatory single-line value.
func requiredLine(field, value string) []validator.Rule {
	return []validator.Rule{validator.Required(field, value), line(field, value)}
}

// requiredText validates a mandatory free-text value.
func requiredText(field, value string) []validator.Rule {
	return []validator.Rule{validator.Required(field, value), text(field, value)}
}

func join(groups ...[]validator.Rule) []validator.Rule {
	var out []validator.Rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// known builds a rule backed by a reference data lookup.
func known(field, message string, lookup func() bool) validator.Rule {
	return validator.Rule{
		Check: lookup,
		Error: validator.ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    "validation.one_of",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// unique drops repeated values, keeping the first occurrence.
func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
