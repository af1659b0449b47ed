package validator

import (
	"regexp"
	"time"
)

// DateLayout is the day-month-year layout used by every date field in the portal.
const DateLayout = "02-01-2006"

var dateRegex = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`)

// ParseDate parses a DD-MM-YYYY date, rejecting impossible days such as 31-02-2024.
func ParseDate(value string) (time.Time, bool) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidDate validates a DD-MM-YYYY date.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a date in DD-MM-YYYY format",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateNotBefore validates that the DD-MM-YYYY date value is not earlier than
// start. It passes when either date is unparsable so that ValidDate reports
// the format problem on its own.
func DateNotBefore(field, value, start string) Rule {
	return Rule{
		Check: func() bool {
			v, okV := ParseDate(value)
			s, okS := ParseDate(start)
			if !okV || !okS {
				return true
			}
			return !v.Before(s)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be earlier than " + start,
			TranslationKey: "validation.date_not_before",
			TranslationValues: map[string]any{
				"field": field,
				"start": start,
			},
		},
	}
}
