package palette

import (
	"github.com/jkl1337/go-chromath"
)

// Lab is a CIE L*a*b* coordinate relative to the D65 white.
type Lab = chromath.Lab

// XYZ is a CIE XYZ tristimulus value scaled so the D65 white has Y=1.
type XYZ struct {
	X, Y, Z float64
}

var (
	// sRGB is natively D65, so no chromatic adaptation is needed.
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)

	whiteY = rgb2Xyz.Convert(chromath.RGB{1, 1, 1}).Y()
)

// ToLab converts an sRGB color to CIE L*a*b* under D65.
func ToLab(c RGB) Lab {
	xyz := rgb2Xyz.Convert(chromath.RGB{c.R, c.G, c.B})
	return lab2Xyz.Invert(xyz)
}

// ToRGB converts a Lab coordinate back to sRGB. Colors outside the sRGB
// gamut are clamped per channel, so the result is always displayable.
func ToRGB(lab Lab) RGB {
	xyz := lab2Xyz.Convert(lab)
	rgb := rgb2Xyz.Invert(xyz)
	return RGB{rgb.R(), rgb.G(), rgb.B()}.Clamp()
}

// ToXYZ converts an sRGB color to relative CIE XYZ under D65.
func ToXYZ(c RGB) XYZ {
	xyz := rgb2Xyz.Convert(chromath.RGB{c.R, c.G, c.B})
	return XYZ{xyz.X() / whiteY, xyz.Y() / whiteY, xyz.Z() / whiteY}
}

// Lightness returns the L* of c.
func Lightness(c RGB) float64 {
	return ToLab(c).L()
}
