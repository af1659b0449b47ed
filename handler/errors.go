package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse = errors.New("handler returned nil response")
	ErrNotDataStar = errors.New("endpoint requires a DataStar request")
)

// HTTPError is an error with a status code and the translation key of the
// message shown to the user.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "errors.unsupported_media_type"}
	ErrPayloadTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "errors.payload_too_large"}
	ErrInternal             = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
	ErrUnavailable          = HTTPError{Code: http.StatusServiceUnavailable, Key: "errors.unavailable"}
)

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that renders nothing and hands err to the
// ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}
