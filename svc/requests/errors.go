package requests

import "errors"

var (
	ErrUnknownType      = errors.New("requests: unknown request type")
	ErrInvalidPayload   = errors.New("requests: payload cannot be decoded")
	ErrIdentityRequired = errors.New("requests: verified identity required")
	ErrDuplicate        = errors.New("requests: identical request already submitted")
	ErrDeliveryFailed   = errors.New("requests: workflow delivery failed")
)
