package image

import (
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/palette"
	"github.com/pkg/errors"
)

// ColorVol is a color present in an image, its L*a*b* equivalent, and the
// number of sampled pixels it covers.
type ColorVol struct {
	RGB   palette.RGB
	Lab   palette.Lab
	Count int
}

type byCount []ColorVol

func (cvs byCount) Len() int           { return len(cvs) }
func (cvs byCount) Less(i, j int) bool { return cvs[i].Count > cvs[j].Count }
func (cvs byCount) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

type byDarkness []ColorVol

func (cvs byDarkness) Len() int { return len(cvs) }
func (cvs byDarkness) Less(i, j int) bool {
	return cvs[i].Lab.L() < cvs[j].Lab.L()
}
func (cvs byDarkness) Swap(i, j int) { cvs[i], cvs[j] = cvs[j], cvs[i] }

// sampling stride used when counting quantized colors
const histogramStep = 2

// GetColors quantizes img down to at most num colors and returns them with
// their prevalence, most common first.
func GetColors(img image.Image, num int) ([]ColorVol, error) {
	if num < 1 {
		return nil, errors.Errorf("cannot reduce an image to %d colors", num)
	}

	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)

	ranked := RankColors(Histogram(o, histogramStep))
	if len(ranked) > num {
		ranked = ranked[:num]
	}

	cvs := make([]ColorVol, len(ranked))
	for i, cc := range ranked {
		rgb := palette.FromBytes(cc.Color.R, cc.Color.G, cc.Color.B)
		cvs[i] = ColorVol{rgb, palette.ToLab(rgb), cc.Count}
	}
	sort.Stable(byCount(cvs))
	return cvs, nil
}

// Extract builds a colormap from the dominant colors of img, ordered from
// darkest to lightest.
func Extract(img image.Image, num int, name string) (colormap.Colormap, error) {
	cvs, err := GetColors(img, num)
	if err != nil {
		return colormap.Colormap{}, err
	}
	if len(cvs) < 2 {
		return colormap.Colormap{}, errors.Errorf("image does not have enough variation to support a %d color colormap", num)
	}

	sort.Stable(byDarkness(cvs))
	colors := make([]palette.RGB, len(cvs))
	for i, cv := range cvs {
		colors[i] = cv.RGB
	}
	return colormap.New(name, colors, colormap.Metadata{
		Source:    "extracted",
		NumPoints: len(colors),
		Type:      "discrete",
	})
}
