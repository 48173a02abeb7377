package image

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, errors.Wrapf(e, "decoding %s", path)
	}

	return i, nil
}

// Save writes img to path as PNG.
func Save(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}

	if e = png.Encode(f, img); e != nil {
		f.Close()
		return errors.Wrapf(e, "encoding %s", path)
	}
	return f.Close()
}
