package logging

import "errors"

var (
	ErrNilClock     = errors.New("formatter requires a clock")
	ErrInvalidLevel = errors.New("invalid log level")
)
