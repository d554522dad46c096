package tween

import (
	"context"
	"testing"
	"time"

	"github.com/matt-g-everett/ledtween/tween/tweentest"
)

func TestRefreshSchedulerBatches(t *testing.T) {
	s := NewRefreshScheduler(50)
	if s.Interval() != 20*time.Millisecond {
		t.Errorf("Interval() = %v, want 20ms", s.Interval())
	}

	calls := 0
	s.ScheduleOnce(func() { calls++ })
	s.ScheduleOnce(func() {
		calls++
		s.ScheduleOnce(func() { calls++ })
	})

	if n := s.Refresh(); n != 2 {
		t.Errorf("first Refresh() ran %d, want 2", n)
	}
	if calls != 2 {
		t.Errorf("calls = %d after first refresh, want 2", calls)
	}
	if n := s.Refresh(); n != 1 {
		t.Errorf("second Refresh() ran %d, want 1", n)
	}
	if n := s.Refresh(); n != 0 {
		t.Errorf("idle Refresh() ran %d, want 0", n)
	}
}

func TestRefreshSchedulerDefaultRate(t *testing.T) {
	s := NewRefreshScheduler(0)
	if want := time.Second / DefaultRefreshHz; s.Interval() != want {
		t.Errorf("Interval() = %v, want %v", s.Interval(), want)
	}
}

func TestRefreshSchedulerDrivesTween(t *testing.T) {
	clock := tweentest.NewFakeClock()
	s := NewRefreshScheduler(60)
	rec := new(recorder)
	c := DefaultConfig()
	c.OnTick = rec.onTick
	c.OnComplete = rec.onComplete
	tw, err := New(c, s, WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}

	tw.Play()
	refreshes := 0
	for s.Refresh() > 0 {
		clock.Advance(s.Interval())
		refreshes++
	}

	ticks, completed := rec.snapshot()
	if completed != 1 {
		t.Fatalf("completed %d times, want 1", completed)
	}
	if ticks[len(ticks)-1] != 100 {
		t.Errorf("last tick = %v, want 100", ticks[len(ticks)-1])
	}
	// Frame 25 is reached once more than 960ms have elapsed: refresh 58.
	if refreshes != 59 {
		t.Errorf("took %d refreshes, want 59", refreshes)
	}
}

func TestRefreshSchedulerRun(t *testing.T) {
	s := NewRefreshScheduler(200)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(stopped)
	}()

	ran := make(chan struct{})
	s.ScheduleOnce(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never ran")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
