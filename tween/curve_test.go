package tween

import (
	"math"
	"testing"
)

func TestCurveForPresets(t *testing.T) {
	tests := []struct {
		easing Easing
		want   ControlPoints
	}{
		{Decelerate, ControlPoints{P1: 10, P2: 10, P3: 10, P4: 2}},
		{Accelerate, ControlPoints{P1: 10, P2: 2, P3: 2, P4: 2}},
		{Bubble, ControlPoints{P1: 10, P2: 10, P3: 2, P4: 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.easing), func(t *testing.T) {
			got, ok := CurveFor(tt.easing, 2, 10)
			if !ok {
				t.Fatalf("CurveFor(%q) reported no curve", tt.easing)
			}
			if got != tt.want {
				t.Errorf("CurveFor(%q) = %+v, want %+v", tt.easing, got, tt.want)
			}
			if v := got.ValueAt(0); v != 2 {
				t.Errorf("ValueAt(0) = %v, want start", v)
			}
			if v := got.ValueAt(1); v != 10 {
				t.Errorf("ValueAt(1) = %v, want end", v)
			}
		})
	}
}

func TestCurveForLinearAndUnknown(t *testing.T) {
	for _, easing := range []Easing{Linear, "bogus", "", InQuad} {
		if _, ok := CurveFor(easing, 0, 10); ok {
			t.Errorf("CurveFor(%q) returned a Bezier curve", easing)
		}
	}
}

func TestValueAtBernstein(t *testing.T) {
	cp := ControlPoints{P1: 1, P2: 2, P3: 3, P4: 4}
	// At t=0.5 every cubic term is 1/8 and every quadratic term 3/8.
	want := 1*0.125 + 2*0.375 + 3*0.375 + 4*0.125
	if got := cp.ValueAt(0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("ValueAt(0.5) = %v, want %v", got, want)
	}
}

func TestKnownAndEasings(t *testing.T) {
	names := Easings()
	if len(names) != 4+len(easeFuncs) {
		t.Fatalf("Easings() returned %d names", len(names))
	}
	for i, name := range names {
		if !Known(name) {
			t.Errorf("Known(%q) = false", name)
		}
		if i > 0 && names[i-1] >= name {
			t.Errorf("Easings() not sorted at %q", name)
		}
	}
	if Known("bogus") {
		t.Error(`Known("bogus") = true`)
	}
}
