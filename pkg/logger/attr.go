package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// RequestType records a portal request type under the key "request_type".
func RequestType(t string) slog.Attr {
	return slog.String("request_type", t)
}

// Step records a wizard step under the key "step".
func Step(step string) slog.Attr {
	return slog.String("step", step)
}

// SubmissionID records the id assigned to a delivered request.
func SubmissionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("submission_id", id)
}

// RUT records a national identifier under the key "rut" with all but the
// last two body digits masked, e.g. "12.345.678-5" becomes "**.***.*78-5".
func RUT(value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String("rut", MaskRUT(value))
}

// MaskRUT hides every digit of value except the check character and the two
// digits before it. Separators are kept in place.
func MaskRUT(value string) string {
	keep := 3
	masked := []byte(value)
	for i := len(masked) - 1; i >= 0; i-- {
		c := masked[i]
		if c == '.' || c == '-' {
			continue
		}
		if keep > 0 {
			keep--
			continue
		}
		masked[i] = '*'
	}
	return string(masked)
}
