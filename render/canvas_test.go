package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/pong/core"
)

func TestCanvasClearAndPixelBounds(t *testing.T) {
	c := NewCanvas(100, 100, 10, 5)
	c.Clear(core.RGBWhite)

	if got := c.Pixel(9, 9); got != core.RGBWhite {
		t.Errorf("Expected white at last subpixel, got %+v", got)
	}
	if got := c.Pixel(10, 0); got != core.RGBBlack {
		t.Errorf("Expected black outside grid, got %+v", got)
	}
	if got := c.Pixel(0, -1); got != core.RGBBlack {
		t.Errorf("Expected black outside grid, got %+v", got)
	}
}

func TestCanvasFillRectCoversCenters(t *testing.T) {
	// 10 subpixels per axis, 10 surface pixels each
	c := NewCanvas(100, 100, 10, 5)
	red := core.RGB{R: 255}
	c.FillRect(core.Rect{X: 0, Y: 20, Width: 10, Height: 30}, red)

	for y := 0; y < 10; y++ {
		want := y >= 2 && y <= 4
		if got := c.Pixel(0, y) == red; got != want {
			t.Errorf("Subpixel (0,%d): lit=%v, expected %v", y, got, want)
		}
	}
	if c.Pixel(1, 3) == red {
		t.Error("Expected rect to stay in first column")
	}
}

func TestCanvasFillRectTinyStillVisible(t *testing.T) {
	c := NewCanvas(1000, 600, 10, 3)
	blue := core.RGB{B: 255}
	c.FillRect(core.Rect{X: 990, Y: 250, Width: 10, Height: 100}, blue)

	lit := 0
	for y := 0; y < 6; y++ {
		if c.Pixel(9, y) == blue {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected a narrow paddle to light at least one subpixel")
	}
}

func TestCanvasTinyShapeOutsideStaysUnlit(t *testing.T) {
	// Centers at -3 surface pixels sit in subpixel -1, off the grid
	red := core.RGB{R: 255}
	tests := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"thin rect left", func(c *Canvas) { c.FillRect(core.Rect{X: -4, Y: 20, Width: 2, Height: 30}, red) }},
		{"flat rect above", func(c *Canvas) { c.FillRect(core.Rect{X: 20, Y: -4, Width: 30, Height: 2}, red) }},
		{"tiny circle left", func(c *Canvas) { c.FillCircle(-3, 55, 1, red) }},
		{"tiny circle above", func(c *Canvas) { c.FillCircle(55, -3, 1, red) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(100, 100, 10, 5)
			tt.draw(c)
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if c.Pixel(x, y) == red {
						t.Errorf("Subpixel (%d,%d) lit by a shape outside the court", x, y)
					}
				}
			}
		})
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(100, 100, 10, 5)
	green := core.RGB{G: 255}
	c.FillCircle(50, 50, 10, green)

	if c.Pixel(4, 4) != green || c.Pixel(5, 5) != green {
		t.Error("Expected center subpixels lit")
	}
	if c.Pixel(0, 0) == green || c.Pixel(9, 9) == green {
		t.Error("Expected corners unlit")
	}

	// Smaller than a subpixel
	c.Clear(core.RGBBlack)
	c.FillCircle(55, 55, 1, green)
	if c.Pixel(5, 5) != green {
		t.Error("Expected tiny circle to light its center subpixel")
	}
}

func TestCanvasCellPairsSubpixels(t *testing.T) {
	c := NewCanvas(10, 20, 1, 1)
	top := core.RGB{R: 10}
	c.FillRect(core.Rect{X: 0, Y: 0, Width: 10, Height: 10}, top)

	upper, lower := c.Cell(0, 0)
	if upper != top || lower != core.RGBBlack {
		t.Errorf("Expected upper lit only, got %+v / %+v", upper, lower)
	}
}

func TestCanvasDrawImageStretches(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	c := NewCanvas(100, 100, 2, 1)
	c.DrawImage(img)

	tests := []struct {
		x, y int
		want core.RGB
	}{
		{0, 0, core.RGB{R: 255}},
		{1, 0, core.RGB{G: 255}},
		{0, 1, core.RGB{B: 255}},
		{1, 1, core.RGBWhite},
	}
	for _, tt := range tests {
		if got := c.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d,%d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
		}
	}

	// Cached sample survives a clear
	c.Clear(core.RGBBlack)
	c.DrawImage(img)
	if got := c.Pixel(1, 1); got != core.RGBWhite {
		t.Errorf("Expected cached background redraw, got %+v", got)
	}
}

func TestCanvasResizeKeepsSurface(t *testing.T) {
	c := NewCanvas(800, 400, 10, 10)
	c.Resize(0, -3)

	cols, rows := c.Grid()
	if cols != 1 || rows != 1 {
		t.Errorf("Expected grid clamped to 1x1, got %dx%d", cols, rows)
	}
	if w, h := c.Size(); w != 800 || h != 400 {
		t.Errorf("Expected surface 800x400, got %.0fx%.0f", w, h)
	}
}
