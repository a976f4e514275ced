package repository

import "errors"

var (
	ErrFailedToGet   = errors.New("failed to get webhook id")
	ErrFailedToSet   = errors.New("failed to store webhook id")
	ErrFailedToClear = errors.New("failed to clear webhook id")
	ErrEmptyScope    = errors.New("scope id is empty")
	ErrEmptyID       = errors.New("webhook id is empty")
	ErrUnknownDriver = errors.New("unknown state driver")
)
