package client

import "errors"

var (
	ErrClient = errors.New("daemon request failed")
)
