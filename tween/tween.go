package tween

import (
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/matt-g-everett/ledtween/util"
)

// State is where a Tween is in its playback lifecycle.
type State int

const (
	Idle State = iota
	Playing
	Completed
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// A Tween plays a precomputed sequence of frames against the wall clock.
//
// Every tick recomputes the frame from the time elapsed since Play, so late
// ticks skip frames rather than stretch the animation. Stop is cooperative: a
// tick that is already scheduled still delivers its value, then the chain ends
// without OnComplete.
type Tween struct {
	config    Config
	timing    Timing
	frames    []float64
	scheduler Scheduler
	clock     Clock
	logger    *log.Logger

	mu        sync.Mutex
	session   uint64
	startTime time.Time
	stopped   bool
	state     State
}

// An Option customises a Tween.
type Option func(*Tween)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(t *Tween) {
		t.clock = c
	}
}

// WithLogger logs play, stop and completion to l.
func WithLogger(l *log.Logger) Option {
	return func(t *Tween) {
		t.logger = l
	}
}

// New creates a Tween and generates its frames. A nil scheduler means ticks
// are timed with a TimerScheduler at the tween's tick duration.
func New(config Config, scheduler Scheduler, opts ...Option) (*Tween, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.OnTick == nil {
		config.OnTick = func(float64) {}
	}
	if config.OnComplete == nil {
		config.OnComplete = func() {}
	}

	t := new(Tween)
	t.config = config
	t.timing = config.Timing()
	t.frames = GenerateFrames(config, t.timing.FrameCount)
	t.clock = SystemClock
	t.logger = log.New(io.Discard, "", 0)
	t.state = Idle
	for _, opt := range opts {
		opt(t)
	}

	if scheduler == nil {
		delay := time.Duration(t.timing.ActualTickDurationMs * float64(time.Millisecond))
		scheduler = NewTimerScheduler(delay)
	}
	t.scheduler = scheduler

	return t, nil
}

// Config returns the configuration the tween was built from.
func (t *Tween) Config() Config {
	return t.config
}

// Timing returns the derived tick and frame counts.
func (t *Tween) Timing() Timing {
	return t.timing
}

// FrameCount is the index of the final frame.
func (t *Tween) FrameCount() int {
	return t.timing.FrameCount
}

// Duration is the playback length after stretching to whole ticks.
func (t *Tween) Duration() time.Duration {
	return time.Duration(t.timing.TotalMs() * float64(time.Millisecond))
}

// Frames returns a copy of the precomputed values.
func (t *Tween) Frames() []float64 {
	frames := make([]float64, len(t.frames))
	copy(frames, t.frames)
	return frames
}

// State reports the current lifecycle state.
func (t *Tween) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Play starts a new session from frame 0. Calling it while playing restarts
// playback; ticks already scheduled for the earlier session are dropped.
func (t *Tween) Play() *Tween {
	t.mu.Lock()
	t.session++
	session := t.session
	t.startTime = t.clock.Now()
	t.stopped = false
	t.state = Playing
	t.mu.Unlock()

	t.logger.Printf("tween: play %v to %v over %d frames (%s)", t.config.Start, t.config.End,
		t.timing.FrameCount, t.config.Easing)
	t.schedule(session)
	return t
}

// Stop ends the session at its next tick.
func (t *Tween) Stop() *Tween {
	t.mu.Lock()
	t.stopped = true
	wasPlaying := t.state == Playing
	if wasPlaying {
		t.state = Stopped
	}
	t.mu.Unlock()

	if wasPlaying {
		t.logger.Println("tween: stop")
	}
	return t
}

func (t *Tween) schedule(session uint64) {
	t.scheduler.ScheduleOnce(func() {
		t.step(session)
	})
}

// currentFrame must be called with mu held.
func (t *Tween) currentFrame() int {
	elapsedMs := float64(t.clock.Now().Sub(t.startTime)) / float64(time.Millisecond)
	frame := math.Ceil(elapsedMs / t.timing.ActualTickDurationMs)
	if frame >= float64(t.timing.FrameCount) {
		return t.timing.FrameCount
	}
	return util.ClampInt(int(frame), 0, t.timing.FrameCount)
}

func (t *Tween) step(session uint64) {
	t.mu.Lock()
	if session != t.session {
		t.mu.Unlock()
		return
	}
	frame := t.currentFrame()
	stopped := t.stopped
	t.mu.Unlock()

	// A constant tween only caches its first frame.
	t.config.OnTick(t.frames[util.ClampInt(frame, 0, len(t.frames)-1)])

	if stopped {
		return
	}
	if frame < t.timing.FrameCount {
		t.schedule(session)
		return
	}

	t.mu.Lock()
	complete := session == t.session && !t.stopped
	if complete {
		t.state = Completed
	}
	t.mu.Unlock()

	if complete {
		t.logger.Println("tween: complete")
		t.config.OnComplete()
	}
}
