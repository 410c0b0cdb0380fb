package render

import (
	"image"

	"github.com/lixenwraith/pong/core"
)

// Surface is a fixed-size drawing target addressed in surface pixels
type Surface interface {
	// Size returns the logical surface dimensions
	Size() (width, height float64)
	// Clear fills the whole surface
	Clear(c core.RGB)
	FillRect(r core.Rect, c core.RGB)
	FillCircle(cx, cy, radius float64, c core.RGB)
	// DrawImage stretches img over the whole surface
	DrawImage(img image.Image)
	// DrawText draws left-aligned text whose baseline is at y
	DrawText(text string, x, y, height float64, c core.RGB)
}
