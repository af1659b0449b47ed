package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodySize caps JSON bodies. Portal forms are small.
const DefaultMaxBodySize int64 = 1 << 20

// JSON decodes an application/json body into v. Unknown fields and trailing
// data are rejected; a missing Content-Type is accepted as JSON.
func JSON() func(r *http.Request, v any) error {
	return JSONLimit(DefaultMaxBodySize)
}

// JSONLimit is JSON with a custom body size cap.
func JSONLimit(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			mediaType, _, err := mime.ParseMediaType(ct)
			if err != nil || mediaType != "application/json" {
				return fmt.Errorf("%w: %q, expected application/json", ErrUnsupportedMediaType, ct)
			}
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
			case errors.Is(err, io.EOF):
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			default:
				return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
			}
		}

		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}
