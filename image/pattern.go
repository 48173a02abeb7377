package image

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

// A Field is a scalar image with values in [0,1], stored row-major.
type Field struct {
	Width, Height int
	Values        []float64
}

// NewField evaluates f at every pixel. f receives the pixel coordinates.
func NewField(width, height int, f func(x, y int) float64) Field {
	fd := Field{width, height, make([]float64, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fd.Values[y*width+x] = clamp01(f(x, y))
		}
	}
	return fd
}

// At returns the value at x, y.
func (f Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Image renders the field as an opaque grayscale image, value 1 being white.
func (f Field) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Values {
		g := uint8(math.Round(clamp01(v) * 255))
		copy(img.Pix[4*i:], []uint8{g, g, g, 0xff})
	}
	return img
}

// norm maps a pixel index onto [0,1] along an axis of n pixels.
func norm(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Composite is a structured pattern for spotting false edges and lost
// detail introduced by a colormap.
func Composite(width, height int) Field {
	return NewField(width, height, func(x, y int) float64 {
		nx, ny := norm(x, width), norm(y, height)
		p1 := math.Sin(nx*math.Pi*4) * math.Cos(ny*math.Pi*4)
		p2 := math.Exp(-((nx-0.5)*(nx-0.5) + (ny-0.5)*(ny-0.5)) * 8)
		p3 := math.Sin(nx * ny * math.Pi * 8)
		return (p1*0.4 + p2*0.4 + p3*0.2 + 1) / 2
	})
}

// SineWave is a product of sines with a 0.05 rad/pixel frequency.
func SineWave(width, height int) Field {
	return NewField(width, height, func(x, y int) float64 {
		return (math.Sin(float64(x)*0.05)*math.Cos(float64(y)*0.05) + 1) / 2
	})
}

// Ramp increases linearly from 0 at the left edge to 1 at the right.
func Ramp(width, height int) Field {
	return NewField(width, height, func(x, _ int) float64 {
		return norm(x, width)
	})
}

// Patterns maps pattern names to their generators.
var Patterns = map[string]func(width, height int) Field{
	"test":     Composite,
	"sine":     SineWave,
	"gradient": Ramp,
}

// Pattern renders a named pattern.
func Pattern(name string, width, height int) (Field, error) {
	gen, ok := Patterns[name]
	if !ok {
		return Field{}, errors.Errorf("unknown pattern %q", name)
	}
	if width < 1 || height < 1 {
		return Field{}, errors.Errorf("invalid pattern size %dx%d", width, height)
	}
	return gen(width, height), nil
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
