package tween

import (
	"errors"
	"fmt"
	"math"

	"github.com/matt-g-everett/ledtween/util"
)

// Defaults applied by DefaultConfig.
const (
	DefaultStart      = 0.0
	DefaultEnd        = 100.0
	DefaultDurationMs = 1000.0
	DefaultEasing     = Decelerate
	DefaultFPS        = 25.0
)

// MaxFrames bounds the frame cache of a single tween.
const MaxFrames = 1 << 20

var (
	ErrInvalidFPS      = errors.New("fps must be positive")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrTooManyFrames   = errors.New("too many frames")
)

// Config describes a tween. Start from DefaultConfig and override fields.
type Config struct {
	Start      float64 `yaml:"start" json:"start"`
	End        float64 `yaml:"end" json:"end"`
	DurationMs float64 `yaml:"durationMs" json:"durationMs"`
	Easing     Easing  `yaml:"easing" json:"easing"`
	FPS        float64 `yaml:"fps" json:"fps"`

	// Continuous keeps eased frames unrounded. Linear frames are never rounded.
	Continuous bool `yaml:"continuous" json:"continuous"`

	OnTick     func(value float64) `yaml:"-" json:"-"`
	OnComplete func()              `yaml:"-" json:"-"`
}

// DefaultConfig returns a 0 to 100 decelerating tween over one second at 25fps.
func DefaultConfig() Config {
	return Config{
		Start:      DefaultStart,
		End:        DefaultEnd,
		DurationMs: DefaultDurationMs,
		Easing:     DefaultEasing,
		FPS:        DefaultFPS,
	}
}

// Timing holds the values derived from a Config's duration and fps.
type Timing struct {
	// TickDurationMs is the nominal 1000/fps.
	TickDurationMs float64
	// FrameCount is the number of ticks, so the cache holds FrameCount+1 values.
	FrameCount int
	// ActualTickDurationMs is the duration stretched to a whole number of ticks.
	ActualTickDurationMs float64
}

// TotalMs is the playback length after stretching.
func (t Timing) TotalMs() float64 {
	return float64(t.FrameCount) * t.ActualTickDurationMs
}

// Validate checks that c can be played.
func (c Config) Validate() error {
	if math.IsNaN(c.FPS) || math.IsInf(c.FPS, 0) || c.FPS <= 0 {
		return fmt.Errorf("fps %v: %w", c.FPS, ErrInvalidFPS)
	}
	if math.IsNaN(c.DurationMs) || math.IsInf(c.DurationMs, 0) || c.DurationMs <= 0 {
		return fmt.Errorf("duration %vms: %w", c.DurationMs, ErrInvalidDuration)
	}
	if frames := c.frames(); frames > MaxFrames {
		return fmt.Errorf("%vms at %vfps needs %v frames, limit %d: %w", c.DurationMs, c.FPS, frames, MaxFrames, ErrTooManyFrames)
	}
	return nil
}

// frames is ceil(duration/tick), kept as a float so it cannot overflow int.
func (c Config) frames() float64 {
	return math.Ceil(c.DurationMs / (1000 / c.FPS))
}

// Timing derives tick and frame counts. c must be valid.
func (c Config) Timing() Timing {
	frames := util.ClampInt(int(math.Min(c.frames(), MaxFrames)), 1, MaxFrames)
	return Timing{
		TickDurationMs:       1000 / c.FPS,
		FrameCount:           frames,
		ActualTickDurationMs: math.Ceil(c.DurationMs / float64(frames)),
	}
}
