package executor

import "errors"

var (
	ErrParameterNotSet = errors.New("parameter not set")
	ErrInvalidID       = errors.New("identifier is not a valid UUID")
	ErrNoHost          = errors.New("executor: host is required")
)
