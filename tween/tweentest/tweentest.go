// Package tweentest provides a controllable clock and scheduler for driving
// tweens deterministically.
package tweentest

import (
	"sync"
	"time"
)

// FakeClock is a clock that only moves when told to. Safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// AdvanceMs moves the clock forward by ms milliseconds.
func (c *FakeClock) AdvanceMs(ms int) {
	c.Advance(time.Duration(ms) * time.Millisecond)
}

// ManualScheduler queues callbacks until the test runs them.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// NewManualScheduler creates an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return new(ManualScheduler)
}

// ScheduleOnce queues f.
func (s *ManualScheduler) ScheduleOnce(f func()) {
	s.mu.Lock()
	s.pending = append(s.pending, f)
	s.mu.Unlock()
}

// Pending is the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Step runs the oldest queued callback and reports whether there was one.
func (s *ManualScheduler) Step() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	f := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()

	f()
	return true
}

// RunUntilIdle steps until nothing is queued, advancing clock by interval
// before each step when clock is not nil. It gives up after limit steps and
// returns the number of steps taken.
func (s *ManualScheduler) RunUntilIdle(clock *FakeClock, interval time.Duration, limit int) int {
	steps := 0
	for steps < limit && s.Pending() > 0 {
		if clock != nil {
			clock.Advance(interval)
		}
		s.Step()
		steps++
	}
	return steps
}
