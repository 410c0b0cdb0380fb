package render

import (
	"image"
	"math"

	"github.com/lixenwraith/pong/core"
)

// Canvas rasterizes surface drawing into a grid of square-ish subpixels.
// Each terminal cell holds two subpixels stacked vertically (upper and lower half block).
type Canvas struct {
	width, height float64 // logical surface size
	cols, rows    int     // terminal cells
	px            []core.RGB

	// Scaled background, rebuilt when the image or grid changes
	bgSrc image.Image
	bgPx  []core.RGB
}

// NewCanvas creates a canvas mapping a width x height surface onto cols x rows cells
func NewCanvas(width, height float64, cols, rows int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid, keeping the logical surface size
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.px = make([]core.RGB, c.cols*c.rows*2)
	c.bgSrc, c.bgPx = nil, nil
}

// Grid returns the cell dimensions
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the logical surface dimensions
func (c *Canvas) Size() (float64, float64) {
	return c.width, c.height
}

// Pixel returns the subpixel color at column x, subpixel row y
func (c *Canvas) Pixel(x, y int) core.RGB {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return core.RGBBlack
	}
	return c.px[y*c.cols+x]
}

// Cell returns the upper and lower subpixel of a terminal cell
func (c *Canvas) Cell(col, row int) (upper, lower core.RGB) {
	return c.Pixel(col, row*2), c.Pixel(col, row*2+1)
}

func (c *Canvas) scaleX() float64 { return float64(c.cols) / c.width }
func (c *Canvas) scaleY() float64 { return float64(c.rows*2) / c.height }

func (c *Canvas) set(x, y int, col core.RGB) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return
	}
	c.px[y*c.cols+x] = col
}

// span returns the subpixel indices whose centers fall in [lo, hi) after scaling
func span(lo, hi, scale float64) (int, int) {
	return int(math.Ceil(lo*scale - 0.5)), int(math.Ceil(hi*scale-0.5)) - 1
}

// Clear fills every subpixel
func (c *Canvas) Clear(col core.RGB) {
	for i := range c.px {
		c.px[i] = col
	}
}

// FillRect lights subpixels whose centers lie inside r.
// A rect smaller than one subpixel still lights the subpixel under its center.
func (c *Canvas) FillRect(r core.Rect, col core.RGB) {
	x0, x1 := span(r.Left(), r.Right(), c.scaleX())
	y0, y1 := span(r.Top(), r.Bottom(), c.scaleY())
	if x1 < x0 {
		x0 = int(math.Floor((r.X + r.Width/2) * c.scaleX()))
		x1 = x0
	}
	if y1 < y0 {
		y0 = int(math.Floor((r.Y + r.Height/2) * c.scaleY()))
		y1 = y0
	}

	for y := max(y0, 0); y <= min(y1, c.rows*2-1); y++ {
		for x := max(x0, 0); x <= min(x1, c.cols-1); x++ {
			c.px[y*c.cols+x] = col
		}
	}
}

// FillCircle lights subpixels whose centers lie within radius of (cx, cy)
func (c *Canvas) FillCircle(cx, cy, radius float64, col core.RGB) {
	sx, sy := c.scaleX(), c.scaleY()
	x0, x1 := span(cx-radius, cx+radius, sx)
	y0, y1 := span(cy-radius, cy+radius, sy)

	lit := false
	for y := max(y0, 0); y <= min(y1, c.rows*2-1); y++ {
		py := (float64(y) + 0.5) / sy
		for x := max(x0, 0); x <= min(x1, c.cols-1); x++ {
			px := (float64(x) + 0.5) / sx
			if math.Hypot(px-cx, py-cy) <= radius {
				c.px[y*c.cols+x] = col
				lit = true
			}
		}
	}
	if !lit {
		c.set(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), col)
	}
}

// DrawImage stretches img across the surface, averaging four samples per subpixel
func (c *Canvas) DrawImage(img image.Image) {
	if img == nil {
		return
	}
	if c.bgSrc != img || len(c.bgPx) != len(c.px) {
		c.bgPx = sampleImage(img, c.cols, c.rows*2)
		c.bgSrc = img
	}
	copy(c.px, c.bgPx)
}

// DrawText rasterizes the bitmap font
func (c *Canvas) DrawText(text string, x, y, height float64, col core.RGB) {
	for _, r := range TextRects(text, x, y, height) {
		c.FillRect(r, col)
	}
}

// sampleImage downsamples img to w x h subpixels
func sampleImage(img image.Image, w, h int) []core.RGB {
	out := make([]core.RGB, w*h)
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return out
	}

	at := func(fx, fy float64) core.RGB {
		sx := b.Min.X + min(int(fx*float64(srcW)), srcW-1)
		sy := b.Min.Y + min(int(fy*float64(srcH)), srcH-1)
		return toRGB(img.At(sx, sy))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Quarter points of the subpixel
			fx0, fx1 := (float64(x)+0.25)/float64(w), (float64(x)+0.75)/float64(w)
			fy0, fy1 := (float64(y)+0.25)/float64(h), (float64(y)+0.75)/float64(h)

			top := at(fx0, fy0).Blend(at(fx1, fy0), 0.5)
			bottom := at(fx0, fy1).Blend(at(fx1, fy1), 0.5)
			out[y*w+x] = top.Blend(bottom, 0.5)
		}
	}
	return out
}
