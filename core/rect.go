package core

// Rect is an axis-aligned box in surface pixels, top-left origin
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Left, Right, Top and Bottom return edge coordinates
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterY returns the vertical midpoint
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Intersects reports strict overlap; touching edges do not count
func (r Rect) Intersects(o Rect) bool {
	return r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Left() < o.Right() &&
		r.Bottom() > o.Top()
}

// SquareAround returns the bounding square of a circle
func SquareAround(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, Width: 2 * radius, Height: 2 * radius}
}
