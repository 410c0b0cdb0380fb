package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/render"
)

// Surface draws onto the ebiten screen image at native surface resolution
type Surface struct {
	dst           *ebiten.Image
	width, height float64

	// Background uploaded once per source image
	bgSrc image.Image
	bg    *ebiten.Image
}

// NewSurface creates a surface of width x height pixels
func NewSurface(width, height float64) *Surface {
	return &Surface{width: width, height: height}
}

// Bind sets the image drawn to by subsequent calls
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) Clear(c core.RGB) {
	s.dst.Fill(toColor(c))
}

func (s *Surface) FillRect(r core.Rect, c core.RGB) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), toColor(c), false)
}

func (s *Surface) FillCircle(cx, cy, radius float64, c core.RGB) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), toColor(c), true)
}

// DrawImage stretches img over the whole surface
func (s *Surface) DrawImage(img image.Image) {
	if img == nil {
		return
	}
	if s.bgSrc != img {
		s.bg = ebiten.NewImageFromImage(img)
		s.bgSrc = img
	}

	op := &ebiten.DrawImageOptions{}
	sx, sy := stretch(img.Bounds(), s.width, s.height)
	op.GeoM.Scale(sx, sy)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.bg, op)
}

// DrawText uses the same bitmap font as the terminal canvas
func (s *Surface) DrawText(text string, x, y, height float64, c core.RGB) {
	for _, r := range render.TextRects(text, x, y, height) {
		s.FillRect(r, c)
	}
}

// stretch returns the scale factors mapping bounds onto width x height
func stretch(b image.Rectangle, width, height float64) (float64, float64) {
	if b.Dx() == 0 || b.Dy() == 0 {
		return 1, 1
	}
	return width / float64(b.Dx()), height / float64(b.Dy())
}

func toColor(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
