package tween

import "github.com/matt-g-everett/ledtween/util"

// GenerateFrames precomputes the value of every frame for c. The result has
// frameCount+1 entries, or a single entry when start and end are equal and the
// curve is linear. Identical configs always produce identical frames.
func GenerateFrames(c Config, frameCount int) []float64 {
	if cp, ok := CurveFor(c.Easing, c.Start, c.End); ok {
		return generate(frameCount, !c.Continuous, cp.ValueAt)
	}

	if f, ok := easeFuncs[c.Easing]; ok {
		difference := c.End - c.Start
		return generate(frameCount, !c.Continuous, func(t float64) float64 {
			return c.Start + difference*f(t)
		})
	}

	// Linear, including unrecognised names.
	difference := c.End - c.Start
	if difference == 0 {
		return []float64{c.Start}
	}
	frames := make([]float64, frameCount+1)
	for i := range frames {
		frames[i] = c.Start + (difference*float64(i))/float64(frameCount)
	}
	// start+(end-start) can miss end by an ulp.
	frames[frameCount] = c.End
	return frames
}

func generate(frameCount int, round bool, valueAt func(float64) float64) []float64 {
	frames := make([]float64, frameCount+1)
	for i := range frames {
		v := valueAt(float64(i) / float64(frameCount))
		if round {
			v = util.RoundHalfUp(v)
		}
		frames[i] = v
	}
	return frames
}
