package image

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/mmuldo/viscm/palette"
)

// Deficiency is a kind of color vision deficiency.
type Deficiency string

const (
	Protanopia    Deficiency = "protanopia"
	Deuteranopia  Deficiency = "deuteranopia"
	Tritanopia    Deficiency = "tritanopia"
	Achromatopsia Deficiency = "achromatopsia"
)

// Deficiencies lists every supported deficiency.
var Deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}

// A Simulator predicts how a color is seen with a given deficiency. The
// analysis functions never use one; it is applied to their outputs.
type Simulator interface {
	Simulate(r, g, b uint8, d Deficiency) (uint8, uint8, uint8)
}

// Simulate applies sim to every pixel of img, keeping alpha.
func Simulate(img *image.NRGBA, sim Simulator, d Deficiency) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	w := b.Dx()
	parallel.Line(b.Dy(), func(start, end int) {
		for y := b.Min.Y + start; y < b.Min.Y+end; y++ {
			si := img.PixOffset(b.Min.X, y)
			di := dst.PixOffset(b.Min.X, y)
			for x := 0; x < w; x, si, di = x+1, si+4, di+4 {
				p := img.Pix[si : si+4 : si+4]
				dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2] = sim.Simulate(p[0], p[1], p[2], d)
				dst.Pix[di+3] = p[3]
			}
		}
	})
	return dst
}

// SimulateColors applies sim to a colormap ramp through 8-bit channels.
func SimulateColors(colors []palette.RGB, sim Simulator, d Deficiency) []palette.RGB {
	out := make([]palette.RGB, len(colors))
	for i, c := range colors {
		r, g, b := c.Bytes()
		out[i] = palette.FromBytes(sim.Simulate(r, g, b, d))
	}
	return out
}
