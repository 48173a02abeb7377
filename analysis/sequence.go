// Package analysis derives perceptual statistics from colormap ramps.
package analysis

import (
	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/palette"
)

// PerceptualDeltas returns the distance between each pair of neighbouring
// colors under m. The result has len(colors)-1 entries, or none.
func PerceptualDeltas(colors []palette.RGB, m palette.Metric) []float64 {
	if len(colors) < 2 {
		return []float64{}
	}
	deltas := make([]float64, len(colors)-1)
	for i := 1; i < len(colors); i++ {
		deltas[i-1] = palette.Distance(colors[i-1], colors[i], m)
	}
	return deltas
}

// LightnessDeltas returns the signed change in L* between neighbouring
// colors, measured on their grayscale projections. Positive values mean the
// ramp gets lighter.
func LightnessDeltas(colors []palette.RGB) []float64 {
	if len(colors) < 2 {
		return []float64{}
	}
	gray := palette.ToGrayscale(colors)
	deltas := make([]float64, len(gray)-1)
	prev := palette.Lightness(gray[0])
	for i := 1; i < len(gray); i++ {
		l := palette.Lightness(gray[i])
		deltas[i-1] = l - prev
		prev = l
	}
	return deltas
}

// Coordinates holds a ramp's path through L*a*b*: X is a*, Y is b* and Z
// is L*.
type Coordinates struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
}

// LabCoordinates converts every color of a ramp to L*a*b*.
func LabCoordinates(colors []palette.RGB) Coordinates {
	c := Coordinates{
		X: make([]float64, len(colors)),
		Y: make([]float64, len(colors)),
		Z: make([]float64, len(colors)),
	}
	for i, rgb := range colors {
		lab := palette.ToLab(rgb)
		c.X[i], c.Y[i], c.Z[i] = lab.A(), lab.B(), lab.L()
	}
	return c
}

// Analysis is everything derived from a single colormap.
type Analysis struct {
	Name             string        `json:"name"`
	Metric           string        `json:"metric"`
	Points           int           `json:"points"`
	PerceptualDeltas []float64     `json:"perceptual_deltas"`
	LightnessDeltas  []float64     `json:"lightness_deltas"`
	Perceptual       Stats         `json:"perceptual_stats"`
	Lightness        Stats         `json:"lightness_stats"`
	Grayscale        []palette.RGB `json:"grayscale"`
	Lab              Coordinates   `json:"lab"`
}

// Analyze runs the full analysis of cm under metric m.
func Analyze(cm colormap.Colormap, m palette.Metric) Analysis {
	colors := cm.Colors()
	pd := PerceptualDeltas(colors, m)
	ld := LightnessDeltas(colors)
	return Analysis{
		Name:             cm.Name,
		Metric:           m.String(),
		Points:           len(colors),
		PerceptualDeltas: pd,
		LightnessDeltas:  ld,
		Perceptual:       ComputeStats(pd),
		Lightness:        ComputeStats(ld),
		Grayscale:        palette.ToGrayscale(colors),
		Lab:              LabCoordinates(colors),
	}
}
