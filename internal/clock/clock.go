// Package clock abstracts the time source used to stamp posts.
// The registry takes a Clock at construction so that tests can freeze
// and move time deterministically.
package clock

import (
	"errors"
	"sync"
	"time"
)

// ErrSetSystemClock is returned when a caller tries to set the system clock.
// Only the fake clock is settable; tests must not mutate real time.
var ErrSetSystemClock = errors.New("the system clock can not be set")

// Clock exposes the current time and, for controllable variants,
// lets callers move it.
type Clock interface {
	Now() time.Time
	Set(t time.Time) error
}

type systemClock struct{}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Set(time.Time) error {
	return ErrSetSystemClock
}

// FakeClock is a controllable Clock. Its value is frozen at the creation
// instant and only changes through Set.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// Fake returns a FakeClock frozen at the current wall-clock instant.
func Fake() *FakeClock {
	return &FakeClock{now: time.Now()}
}

// Now returns the frozen instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Set moves the frozen instant to t.
func (c *FakeClock) Set(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t

	return nil
}
