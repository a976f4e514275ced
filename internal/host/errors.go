package host

import "errors"

var (
	ErrEmptyJob       = errors.New("job file is empty")
	ErrNoClient       = errors.New("host: api client is required")
	ErrItemOutOfRange = errors.New("item index out of range")
)
