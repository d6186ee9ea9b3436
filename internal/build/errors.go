package build

import "errors"

var (
	ErrPlan = errors.New("cannot prepare build plan")
)
