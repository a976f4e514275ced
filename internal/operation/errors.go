package operation

import "errors"

var (
	ErrUnknownOperation = errors.New("unknown resource/operation")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
)
