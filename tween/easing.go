package tween

import (
	"sort"

	"github.com/fogleman/ease"
)

// Function presets, shaped by fogleman/ease rather than a Bezier.
const (
	InQuad     Easing = "in-quad"
	OutQuad    Easing = "out-quad"
	InOutQuad  Easing = "in-out-quad"
	InCubic    Easing = "in-cubic"
	OutCubic   Easing = "out-cubic"
	InOutCubic Easing = "in-out-cubic"
	InSine     Easing = "in-sine"
	OutSine    Easing = "out-sine"
	InOutSine  Easing = "in-out-sine"
	OutBounce  Easing = "out-bounce"
	OutElastic Easing = "out-elastic"
)

var easeFuncs = map[Easing]func(float64) float64{
	InQuad:     ease.InQuad,
	OutQuad:    ease.OutQuad,
	InOutQuad:  ease.InOutQuad,
	InCubic:    ease.InCubic,
	OutCubic:   ease.OutCubic,
	InOutCubic: ease.InOutCubic,
	InSine:     ease.InSine,
	OutSine:    ease.OutSine,
	InOutSine:  ease.InOutSine,
	OutBounce:  ease.OutBounce,
	OutElastic: ease.OutElastic,
}

// Easings lists every preset name that is not treated as Linear, plus Linear
// itself, sorted.
func Easings() []Easing {
	names := make([]Easing, 0, len(bezierPresets)+len(easeFuncs)+1)
	names = append(names, Linear)
	for name := range bezierPresets {
		names = append(names, name)
	}
	for name := range easeFuncs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Known reports whether easing names a preset. Unknown names fall back to Linear.
func Known(easing Easing) bool {
	if easing == Linear {
		return true
	}
	if _, ok := bezierPresets[easing]; ok {
		return true
	}
	_, ok := easeFuncs[easing]
	return ok
}
