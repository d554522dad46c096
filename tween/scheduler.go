package tween

import (
	"context"
	"sync"
	"time"
)

// A Scheduler runs a callback once, soon. Implementations either align the
// call with the next display refresh or wait about one tick.
//
// There is no cancellation: a Tween stops cooperatively on its next tick.
type Scheduler interface {
	ScheduleOnce(f func())
}

// TimerScheduler fires each callback after a fixed delay on its own goroutine.
type TimerScheduler struct {
	Delay time.Duration
}

// NewTimerScheduler creates a TimerScheduler that waits delay between ticks.
func NewTimerScheduler(delay time.Duration) *TimerScheduler {
	s := new(TimerScheduler)
	s.Delay = delay
	return s
}

// ScheduleOnce implements Scheduler.
func (s *TimerScheduler) ScheduleOnce(f func()) {
	time.AfterFunc(s.Delay, f)
}

// DefaultRefreshHz is the refresh rate used when none is configured.
const DefaultRefreshHz = 60

// RefreshScheduler batches callbacks onto a fixed refresh cadence. Every
// callback queued before a refresh runs on that refresh; callbacks queued by a
// running callback wait for the next one.
type RefreshScheduler struct {
	interval time.Duration

	mu      sync.Mutex
	pending []func()
}

// NewRefreshScheduler creates a RefreshScheduler running at refreshHz.
func NewRefreshScheduler(refreshHz float64) *RefreshScheduler {
	if refreshHz <= 0 {
		refreshHz = DefaultRefreshHz
	}
	s := new(RefreshScheduler)
	s.interval = time.Duration(float64(time.Second) / refreshHz)
	return s
}

// Interval is the time between refreshes.
func (s *RefreshScheduler) Interval() time.Duration {
	return s.interval
}

// ScheduleOnce implements Scheduler.
func (s *RefreshScheduler) ScheduleOnce(f func()) {
	s.mu.Lock()
	s.pending = append(s.pending, f)
	s.mu.Unlock()
}

// Refresh runs the callbacks queued so far and reports how many ran.
func (s *RefreshScheduler) Refresh() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, f := range batch {
		f()
	}
	return len(batch)
}

// Run refreshes until ctx is done.
func (s *RefreshScheduler) Run(ctx context.Context) {
	refreshTimer := time.NewTicker(s.interval)
	defer refreshTimer.Stop()
	for {
		select {
		case <-refreshTimer.C:
			s.Refresh()
		case <-ctx.Done():
			return
		}
	}
}
