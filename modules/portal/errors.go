package portal

import (
	"errors"
	"net/http"

	"github.com/atnchile/portal/handler"
	"github.com/atnchile/portal/pkg/webhook"
	"github.com/atnchile/portal/svc/refdata"
	"github.com/atnchile/portal/svc/requests"
	"github.com/atnchile/portal/svc/wizard"
)

var ErrInvalidConfig = errors.New("portal: invalid configuration")

var (
	ErrIdentityRequired = handler.NewHTTPError(http.StatusForbidden, "identity.required")
	ErrInvalidStep      = handler.NewHTTPError(http.StatusNotFound, "wizard.invalid_step")
	ErrNotAllowed       = handler.NewHTTPError(http.StatusConflict, "wizard.not_allowed")
	ErrUnknownType      = handler.NewHTTPError(http.StatusNotFound, "request.unknown_type")
	ErrDuplicate        = handler.NewHTTPError(http.StatusConflict, "request.duplicate")
	ErrDeliveryFailed   = handler.NewHTTPError(http.StatusBadGateway, "request.failed")
)

// classify maps service errors to HTTP errors. Validation errors never get
// here: handler.Classify answers them with 422 first.
func classify(err error) (handler.HTTPError, bool) {
	switch {
	case errors.Is(err, wizard.ErrIdentityRequired), errors.Is(err, requests.ErrIdentityRequired):
		return ErrIdentityRequired, true
	case errors.Is(err, wizard.ErrUnknownStep):
		return ErrInvalidStep, true
	case errors.Is(err, wizard.ErrNavigationBlocked):
		return ErrNotAllowed, true
	case errors.Is(err, requests.ErrUnknownType):
		return ErrUnknownType, true
	case errors.Is(err, requests.ErrInvalidPayload):
		return handler.ErrBadRequest, true
	case errors.Is(err, requests.ErrDuplicate):
		return ErrDuplicate, true
	case webhook.IsCircuitOpen(err):
		return handler.ErrUnavailable, true
	case errors.Is(err, requests.ErrDeliveryFailed):
		return ErrDeliveryFailed, true
	case errors.Is(err, refdata.ErrNotFound):
		return handler.ErrNotFound, true
	case errors.Is(err, refdata.ErrLoadFailed):
		return handler.ErrUnavailable, true
	}
	return handler.HTTPError{}, false
}

// fail hands err to the error handler. A missing identity is reported with
// the field errors joined to it, so it is mapped before handler.Classify
// sees the validation errors.
func fail(err error) handler.Response {
	if errors.Is(err, wizard.ErrIdentityRequired) || errors.Is(err, requests.ErrIdentityRequired) {
		return handler.Error(ErrIdentityRequired)
	}
	return handler.Error(err)
}
