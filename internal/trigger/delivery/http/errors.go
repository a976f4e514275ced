package http

import "errors"

var errDeleteFailed = errors.New("webhook delete failed")
