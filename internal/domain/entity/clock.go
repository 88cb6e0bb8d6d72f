package entity

import "time"

// Clock supplies the current time used to stamp new transactions
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() time.Time

// Now returns the time produced by f
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the local wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}
