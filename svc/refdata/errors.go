package refdata

import "errors"

var (
	ErrLoadFailed = errors.New("refdata: failed to load reference data")
	ErrNotFound   = errors.New("refdata: not found")
)
