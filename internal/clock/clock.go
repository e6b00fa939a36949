// Package clock supplies the current instant to services, which never read
// time.Now themselves.
package clock

import "time"

// Clock allows injecting time in domain/services.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock. Returned instants are normalized to UTC.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f().UTC()
}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return Func(time.Now)
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
