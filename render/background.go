package render

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lixenwraith/pong/core"
	"github.com/pkg/errors"
)

// ErrNoImage is returned when no background path is configured
var ErrNoImage = errors.New("no background image configured")

// LoadImage decodes a JPEG or PNG background from path
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrNoImage
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open background")
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode background %s", path)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.Errorf("background %s (%s) is empty", path, format)
	}
	return img, nil
}

// toRGB converts any color to 8-bit RGB, dropping alpha against black
func toRGB(c color.Color) core.RGB {
	r, g, b, _ := c.RGBA()
	return core.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
