package wizard

import "errors"

var (
	ErrUnknownStep       = errors.New("wizard: unknown step")
	ErrIdentityRequired  = errors.New("wizard: identity must be verified first")
	ErrNavigationBlocked = errors.New("wizard: navigation not allowed from current step")
)
