// Package colormap defines colormaps, the gradients they are sampled from,
// and the registry that hands them to the rest of the program.
package colormap

import (
	"github.com/mmuldo/viscm/palette"
	"github.com/pkg/errors"
)

// DefaultSteps is the resolution continuous gradients are sampled at.
const DefaultSteps = 256

// Metadata describes where a colormap came from. Every field is optional.
type Metadata struct {
	Source    string `json:"source,omitempty"`
	NumPoints int    `json:"num_points,omitempty"`
	Type      string `json:"type,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Colormap is a named, ordered ramp of colors. Index 0 is the low end.
type Colormap struct {
	Name     string
	Metadata Metadata

	colors []palette.RGB
}

// New creates a colormap. It copies colors and fails if there are none.
func New(name string, colors []palette.RGB, meta Metadata) (Colormap, error) {
	if name == "" {
		return Colormap{}, errors.New("colormap has no name")
	}
	if len(colors) == 0 {
		return Colormap{}, errors.Errorf("colormap %q has no colors", name)
	}
	return Colormap{
		Name:     name,
		Metadata: meta,
		colors:   append([]palette.RGB(nil), colors...),
	}, nil
}

// Colors returns a copy of the ramp.
func (cm Colormap) Colors() []palette.RGB {
	return append([]palette.RGB(nil), cm.colors...)
}

// Len returns the number of colors in the ramp.
func (cm Colormap) Len() int {
	return len(cm.colors)
}

// At returns the color at index i.
func (cm Colormap) At(i int) palette.RGB {
	return cm.colors[i]
}

// Nearest returns the entry closest to position t in [0,1]. No
// interpolation is done between neighbouring entries.
func (cm Colormap) Nearest(t float64) palette.RGB {
	return cm.colors[cm.Index(t)]
}

// Index maps t in [0,1] to round(t*(N-1)), clamped to the valid range.
func (cm Colormap) Index(t float64) int {
	n := len(cm.colors)
	if n <= 1 || !(t > 0) {
		return 0
	}
	i := int(t*float64(n-1) + 0.5)
	if i > n-1 {
		return n - 1
	}
	return i
}

// Reversed returns the colormap with its ramp running the other way.
func (cm Colormap) Reversed() Colormap {
	rev := make([]palette.RGB, len(cm.colors))
	for i, c := range cm.colors {
		rev[len(rev)-1-i] = c
	}
	return Colormap{Name: cm.Name + "_r", Metadata: cm.Metadata, colors: rev}
}
