package colormap

import (
	"sort"

	"github.com/mmuldo/viscm/palette"
	"github.com/pkg/errors"
)

// Gradient is a continuous color ramp defined on [0,1].
type Gradient interface {
	At(t float64) palette.RGB
}

// Stop is a gradient control point.
type Stop struct {
	Offset float64
	Color  palette.RGB
}

// Stops is a piecewise linear gradient in sRGB. Offsets must be sorted.
type Stops []Stop

// NewStops spreads colors evenly over [0,1].
func NewStops(colors ...palette.RGB) Stops {
	s := make(Stops, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		s[i] = Stop{off, c}
	}
	return s
}

// At implements Gradient.
func (s Stops) At(t float64) palette.RGB {
	switch {
	case len(s) == 0:
		return palette.RGB{}
	case t <= s[0].Offset:
		return s[0].Color
	case t >= s[len(s)-1].Offset:
		return s[len(s)-1].Color
	}

	i := sort.Search(len(s), func(i int) bool { return s[i].Offset > t })
	lo, hi := s[i-1], s[i]
	f := (t - lo.Offset) / (hi.Offset - lo.Offset)
	return palette.RGB{
		R: lerp(lo.Color.R, hi.Color.R, f),
		G: lerp(lo.Color.G, hi.Color.G, f),
		B: lerp(lo.Color.B, hi.Color.B, f),
	}
}

func lerp(a, b, f float64) float64 {
	if a == b {
		return a
	}
	return a*(1-f) + b*f
}

// Sample builds a colormap by evaluating g at steps evenly spaced points;
// entry i is taken at t = i/(steps-1).
func Sample(name string, g Gradient, steps int, meta Metadata) (Colormap, error) {
	if steps < 1 {
		return Colormap{}, errors.Errorf("colormap %q: invalid number of steps %d", name, steps)
	}
	colors := make([]palette.RGB, steps)
	for i := range colors {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		colors[i] = g.At(t).Clamp()
	}
	meta.NumPoints = steps
	return New(name, colors, meta)
}
