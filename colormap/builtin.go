package colormap

import (
	"github.com/mmuldo/viscm/palette"
)

// Builtin gradients, used when no colormap index is configured.
var (
	Gray = NewStops(palette.RGB{0, 0, 0}, palette.RGB{1, 1, 1})

	// Viridis control points taken from matplotlib at t = k/8.
	Viridis = NewStops(
		palette.RGB{0.267004, 0.004874, 0.329415},
		palette.RGB{0.282623, 0.140926, 0.457517},
		palette.RGB{0.253935, 0.265254, 0.529983},
		palette.RGB{0.206756, 0.371758, 0.553117},
		palette.RGB{0.163625, 0.471133, 0.558148},
		palette.RGB{0.127568, 0.566949, 0.550556},
		palette.RGB{0.134692, 0.658636, 0.517649},
		palette.RGB{0.266941, 0.748751, 0.440573},
		palette.RGB{0.993248, 0.906157, 0.143936},
	)

	Hot = Stops{
		{0, palette.RGB{0.0416, 0, 0}},
		{0.365079, palette.RGB{1, 0, 0}},
		{0.746032, palette.RGB{1, 1, 0}},
		{1, palette.RGB{1, 1, 1}},
	}
)

var builtins = []struct {
	name     string
	gradient Gradient
	category string
}{
	{"viridis", Viridis, "perceptually_uniform"},
	{"gray", Gray, "sequential2"},
	{"hot", Hot, "sequential2"},
}

// Builtin returns a registry of the builtin colormaps sampled at steps.
func Builtin(steps int) (*Registry, error) {
	cms := make([]Colormap, 0, len(builtins))
	for _, b := range builtins {
		cm, err := Sample(b.name, b.gradient, steps, Metadata{
			Source:   "builtin",
			Type:     "continuous",
			Category: b.category,
		})
		if err != nil {
			return nil, err
		}
		cms = append(cms, cm)
	}
	return NewRegistry(cms...)
}
