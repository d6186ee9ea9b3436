package overrides

import "errors"

var (
	ErrRegistry = errors.New("invalid override registry")
	ErrReload   = errors.New("reload failed")
)
