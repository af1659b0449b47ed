package webhook

import "errors"

var (
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
	ErrPermanentFailure = errors.New("webhook rejected the payload")
	ErrTemporaryFailure = errors.New("temporary webhook failure")
	ErrCircuitOpen      = errors.New("webhook circuit breaker is open")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrInvalidURL       = errors.New("invalid webhook URL")
	ErrTimeout          = errors.New("webhook request timeout")
)

// IsCircuitOpen reports whether err came from an open circuit breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

// IsPermanent reports whether retrying the same payload cannot succeed.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanentFailure) || errors.Is(err, ErrInvalidPayload)
}
