package trigger

import "errors"

var (
	ErrEmptyScope         = errors.New("trigger scope id is empty")
	ErrNoEvents           = errors.New("at least one event is required")
	ErrInvalidEvent       = errors.New("unknown webhook event")
	ErrNoCallbackURL      = errors.New("callback url is not configured")
	ErrRegistrationFailed = errors.New("webhook registration failed")
)
