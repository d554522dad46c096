package stream

import "github.com/matt-g-everett/ledtween/tween"

// Message types on the control and events topics.
const (
	TypePlay     = "play"
	TypeStop     = "stop"
	TypeComplete = "complete"
)

// PlayOverrides replace parts of the configured tween for one play.
type PlayOverrides struct {
	Start      *float64      `json:"start,omitempty"`
	End        *float64      `json:"end,omitempty"`
	DurationMs *float64      `json:"durationMs,omitempty"`
	Easing     *tween.Easing `json:"easing,omitempty"`
	FPS        *float64      `json:"fps,omitempty"`
}

// Apply returns c with the overrides set.
func (o *PlayOverrides) Apply(c tween.Config) tween.Config {
	if o == nil {
		return c
	}
	if o.Start != nil {
		c.Start = *o.Start
	}
	if o.End != nil {
		c.End = *o.End
	}
	if o.DurationMs != nil {
		c.DurationMs = *o.DurationMs
	}
	if o.Easing != nil {
		c.Easing = *o.Easing
	}
	if o.FPS != nil {
		c.FPS = *o.FPS
	}
	return c
}

// ControlMessage arrives on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
	PlayOverrides
}

// EventMessage is published on the events topic.
type EventMessage struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Status describes what the streamer is playing.
type Status struct {
	State      string       `json:"state"`
	Value      float64      `json:"value"`
	FrameCount int          `json:"frameCount"`
	DurationMs float64      `json:"durationMs"`
	Tween      tween.Config `json:"tween"`
}
