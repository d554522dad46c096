package stream

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/util"
)

// A Renderer turns a tween value into a Frame.
type Renderer interface {
	Render(value float64) *Frame
}

// BarRenderer lights a run of pixels from the start of the strip whose length
// follows the value, coloured along a gradient.
type BarRenderer struct {
	numPixels  int
	lo, hi     float64
	gradient   GradientTable
	backColour colorful.Color
}

// NewBarRenderer creates a BarRenderer where lo lights nothing and hi lights
// the whole strip.
func NewBarRenderer(numPixels int, lo, hi float64, gradient GradientTable, backColour colorful.Color) *BarRenderer {
	r := new(BarRenderer)
	r.numPixels = numPixels
	r.lo = lo
	r.hi = hi
	r.gradient = gradient
	r.backColour = backColour
	return r
}

// Render implements Renderer.
func (r *BarRenderer) Render(value float64) *Frame {
	f := NewFrame(r.numPixels)
	lit := int(util.RoundHalfUp(util.Fraction(value, r.lo, r.hi) * float64(r.numPixels)))
	saturation := 1.0
	luminance := 0.05
	for i := 0; i < r.numPixels; i++ {
		if i < lit {
			f.pixels[i] = r.gradient.GetColor(float64(i)/float64(r.numPixels), saturation, luminance)
		} else {
			f.pixels[i] = r.backColour
		}
	}
	return f
}

// FillRenderer blends the whole strip from a back colour to a fore colour.
type FillRenderer struct {
	numPixels  int
	lo, hi     float64
	foreColour colorful.Color
	backColour colorful.Color
}

// NewFillRenderer creates a FillRenderer showing backColour at lo and
// foreColour at hi.
func NewFillRenderer(numPixels int, lo, hi float64, foreColour, backColour colorful.Color) *FillRenderer {
	r := new(FillRenderer)
	r.numPixels = numPixels
	r.lo = lo
	r.hi = hi
	r.foreColour = foreColour
	r.backColour = backColour
	return r
}

// Render implements Renderer.
func (r *FillRenderer) Render(value float64) *Frame {
	f := NewFrame(r.numPixels)
	f.Fill(r.backColour.BlendHcl(r.foreColour, util.Fraction(value, r.lo, r.hi)))
	return f
}

// NewRenderer builds the renderer selected by the display config, scaled to
// the range covered by the tween.
func NewRenderer(config Config) (Renderer, error) {
	foreColour, err := colorful.Hex(config.Display.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground colour: %w", err)
	}
	backColour, err := colorful.Hex(config.Display.Background)
	if err != nil {
		return nil, fmt.Errorf("background colour: %w", err)
	}
	if config.Display.Pixels <= 0 || config.Display.Pixels > math.MaxUint16 {
		return nil, fmt.Errorf("pixel count %d out of range", config.Display.Pixels)
	}

	lo := math.Min(config.Tween.Start, config.Tween.End)
	hi := math.Max(config.Tween.Start, config.Tween.End)
	switch config.Display.Mode {
	case ModeFill:
		return NewFillRenderer(config.Display.Pixels, lo, hi, foreColour, backColour), nil
	case ModeBar, "":
		if len(config.Display.Gradient) == 0 {
			return nil, errors.New("bar mode needs a gradient")
		}
		return NewBarRenderer(config.Display.Pixels, lo, hi, config.Display.Gradient, backColour), nil
	}
	return nil, fmt.Errorf("unknown display mode %q", config.Display.Mode)
}
