package tween

import (
	"errors"
	"math"
	"testing"
)

func TestTiming(t *testing.T) {
	tests := []struct {
		name       string
		durationMs float64
		fps        float64
		frames     int
		actualMs   float64
	}{
		{"default", 1000, 25, 25, 40},
		{"constant tween", 500, 10, 5, 100},
		{"thirty fps", 1000, 30, 30, 34},
		{"uneven", 1010, 25, 26, 39},
		{"shorter than a tick", 10, 25, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.DurationMs = tt.durationMs
			c.FPS = tt.fps
			timing := c.Timing()
			if timing.FrameCount != tt.frames {
				t.Errorf("FrameCount = %d, want %d", timing.FrameCount, tt.frames)
			}
			if timing.ActualTickDurationMs != tt.actualMs {
				t.Errorf("ActualTickDurationMs = %v, want %v", timing.ActualTickDurationMs, tt.actualMs)
			}
			if timing.TotalMs() < tt.durationMs {
				t.Errorf("TotalMs() = %v, shorter than %v", timing.TotalMs(), tt.durationMs)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		durationMs float64
		fps        float64
		want       error
	}{
		{"ok", 1000, 25, nil},
		{"zero fps", 1000, 0, ErrInvalidFPS},
		{"negative fps", 1000, -5, ErrInvalidFPS},
		{"nan fps", 1000, math.NaN(), ErrInvalidFPS},
		{"zero duration", 0, 25, ErrInvalidDuration},
		{"negative duration", -1, 25, ErrInvalidDuration},
		{"infinite duration", math.Inf(1), 25, ErrInvalidDuration},
		{"at frame limit", MaxFrames * 40, 25, nil},
		{"over frame limit", MaxFrames*40 + 1, 25, ErrTooManyFrames},
		{"huge fps", 1000, 1e9, ErrTooManyFrames},
		{"overflowing fps", 1000, 1e30, ErrTooManyFrames},
		{"overflowing duration", 1e300, 25, ErrTooManyFrames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.DurationMs = tt.durationMs
			c.FPS = tt.fps
			err := c.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Start != 0 || c.End != 100 || c.DurationMs != 1000 || c.Easing != Decelerate || c.FPS != 25 {
		t.Errorf("DefaultConfig() = %+v", c)
	}
	if c.Continuous {
		t.Error("DefaultConfig() should round eased frames")
	}
}

func TestTimingNeverOverflows(t *testing.T) {
	c := DefaultConfig()
	c.FPS = 1e30
	if got := c.Timing().FrameCount; got != MaxFrames {
		t.Errorf("FrameCount = %d, want %d", got, MaxFrames)
	}
}
