package core

import "testing"

func TestRectIntersects(t *testing.T) {
	paddle := Rect{X: 0, Y: 250, Width: 10, Height: 100}

	tests := []struct {
		name string
		ball Rect
		want bool
	}{
		{"Overlapping face", SquareAround(15, 300, 10), true},
		{"Touching right edge", SquareAround(20, 300, 10), false},
		{"Clear of paddle", SquareAround(40, 300, 10), false},
		{"Grazing top corner", SquareAround(5, 241, 10), true},
		{"Touching top edge", SquareAround(5, 240, 10), false},
		{"Below paddle", SquareAround(5, 361, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ball.Intersects(paddle); got != tt.want {
				t.Errorf("Intersects = %v, want %v (ball %+v)", got, tt.want, tt.ball)
			}
			if got := paddle.Intersects(tt.ball); got != tt.want {
				t.Errorf("Intersects not symmetric for %+v", tt.ball)
			}
		})
	}
}

func TestSquareAround(t *testing.T) {
	r := SquareAround(100, 50, 10)
	if r.Left() != 90 || r.Right() != 110 || r.Top() != 40 || r.Bottom() != 60 {
		t.Errorf("Unexpected square %+v", r)
	}
	if r.CenterY() != 50 {
		t.Errorf("Expected center 50, got %v", r.CenterY())
	}
}
