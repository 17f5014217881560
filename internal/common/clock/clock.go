package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/gamenightlabs/gamenight/internal/common/clock Clock

// Clock abstracts time so services can be tested against a fixed instant
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns a system-backed clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
