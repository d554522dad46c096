package tween

import "time"

// Clock supplies wall-clock time to a Tween.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the real time.
var SystemClock Clock = systemClock{}
