package logging

import "time"

// Clock supplies the timestamp for each log line.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Useful for reproducible output.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
