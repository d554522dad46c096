package tween

// Easing names a preset curve: one of the Bezier presets below, Linear, or
// one of the function presets in easing.go (in-quad, out-bounce, ...). Any
// other name is valid and behaves as Linear.
type Easing string

// Bezier presets.
const (
	Decelerate Easing = "decelerate"
	Accelerate Easing = "accelerate"
	Bubble     Easing = "bubble"
	Linear     Easing = "linear"
)

// ControlPoints are the four values of a cubic Bezier in the value dimension.
// P4 is the value at progress 0 and P1 the value at progress 1.
type ControlPoints struct {
	P1, P2, P3, P4 float64
}

type bezierPreset func(start, end float64) ControlPoints

var bezierPresets = map[Easing]bezierPreset{
	Decelerate: func(start, end float64) ControlPoints {
		return ControlPoints{P1: end, P2: end, P3: end, P4: start}
	},
	Accelerate: func(start, end float64) ControlPoints {
		return ControlPoints{P1: end, P2: start, P3: start, P4: start}
	},
	Bubble: func(start, end float64) ControlPoints {
		return ControlPoints{P1: end, P2: end, P3: start, P4: start}
	},
}

// CurveFor returns the Bezier control points for easing between start and end.
// ok is false for Linear and for any name that is not a Bezier preset, in which
// case the caller interpolates arithmetically.
func CurveFor(easing Easing, start, end float64) (cp ControlPoints, ok bool) {
	preset, found := bezierPresets[easing]
	if !found {
		return ControlPoints{}, false
	}
	return preset(start, end), true
}

// Bernstein basis.
func b1(t float64) float64 { return t * t * t }
func b2(t float64) float64 { return 3 * t * t * (1 - t) }
func b3(t float64) float64 { return 3 * t * (1 - t) * (1 - t) }
func b4(t float64) float64 { return (1 - t) * (1 - t) * (1 - t) }

// ValueAt evaluates the curve at progress, which must be within [0, 1].
func (cp ControlPoints) ValueAt(progress float64) float64 {
	return cp.P1*b1(progress) + cp.P2*b2(progress) + cp.P3*b3(progress) + cp.P4*b4(progress)
}
