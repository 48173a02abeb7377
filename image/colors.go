package image

import (
	"image"
	"image/color"
	"sort"
)

// ColorCount is a color and the number of pixels it covers.
type ColorCount struct {
	Color color.NRGBA
	Count int
}

// ColorCountList orders counts from most to least common.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return packed(ccl[i].Color) < packed(ccl[j].Color)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

func packed(c color.NRGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Histogram counts the opaque colors of img, visiting every step-th pixel
// in each direction. Fully transparent pixels are skipped and alpha is
// otherwise ignored.
func Histogram(img image.Image, step int) map[color.NRGBA]int {
	if step < 1 {
		step = 1
	}
	m := make(map[color.NRGBA]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			c.A = 0xff
			m[c]++
		}
	}

	return m
}

// RankColors sorts a histogram by prevalence.
func RankColors(m map[color.NRGBA]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}
