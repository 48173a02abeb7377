package image

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/palette"
	"github.com/pkg/errors"
)

// MapImage recolors src with cm. Each pixel's L*/100 picks the nearest
// colormap entry, so already rendered grayscale images can be recolored as
// well as raw intensity fields. Alpha is copied unchanged. The colormap
// must have at least one color.
func MapImage(src *image.NRGBA, cm colormap.Colormap) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)

	lut := make([][3]uint8, cm.Len())
	for i := range lut {
		r, g, bl := cm.At(i).Bytes()
		lut[i] = [3]uint8{r, g, bl}
	}

	w := b.Dx()
	parallel.Line(b.Dy(), func(start, end int) {
		// Rendered images tend to reuse few colors.
		seen := make(map[[3]uint8]int)
		for y := b.Min.Y + start; y < b.Min.Y+end; y++ {
			si := src.PixOffset(b.Min.X, y)
			di := dst.PixOffset(b.Min.X, y)
			for x := 0; x < w; x, si, di = x+1, si+4, di+4 {
				px := [3]uint8{src.Pix[si], src.Pix[si+1], src.Pix[si+2]}
				idx, ok := seen[px]
				if !ok {
					gray := palette.Lightness(palette.FromBytes(px[0], px[1], px[2])) / 100
					idx = cm.Index(gray)
					seen[px] = idx
				}
				c := lut[idx]
				dst.Pix[di] = c[0]
				dst.Pix[di+1] = c[1]
				dst.Pix[di+2] = c[2]
				dst.Pix[di+3] = src.Pix[si+3]
			}
		}
	})

	return dst
}

// Map recolors any image, converting it to non-premultiplied RGBA first.
func Map(src image.Image, cm colormap.Colormap) *image.NRGBA {
	return MapImage(ToNRGBA(src), cm)
}

// MapPixels recolors a row-major RGBA buffer of 4 bytes per pixel and
// returns a new buffer of the same size.
func MapPixels(pix []uint8, width, height int, cm colormap.Colormap) ([]uint8, error) {
	if width < 0 || height < 0 || len(pix) != 4*width*height {
		return nil, errors.Errorf("pixel buffer of %d bytes does not hold %dx%d RGBA pixels", len(pix), width, height)
	}
	src := &image.NRGBA{Pix: pix, Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}
	return MapImage(src, cm).Pix, nil
}

// ToNRGBA returns img as an *image.NRGBA, copying unless it already is one.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(b)
	draw.Draw(n, b, img, b.Min, draw.Src)
	return n
}
