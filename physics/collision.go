package physics

import (
	"math"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
)

// Overlaps tests the ball's bounding square against a paddle rectangle
func Overlaps(paddle, ball core.Rect) bool {
	return ball.Intersects(paddle)
}

// CollidePoint returns the vertical hit offset normalized by half the paddle height.
// Inside the paddle span it lies in [-1, 1]; no clamping is applied, and a zero-height
// paddle yields ±Inf or NaN.
func CollidePoint(paddle core.Rect, y float64) float64 {
	return (y - paddle.CenterY()) / (paddle.Height / 2)
}

// ReflectionAngle maps a collide point to a bounce angle, ±45 degrees at the edges
func ReflectionAngle(collidePoint float64) float64 {
	return constants.MaxBounceAngle * collidePoint
}

// Deflect returns the post-hit velocity of magnitude speed at the given angle.
// dir is +1 to send the ball right, -1 to send it left.
func Deflect(dir, speed, angle float64) (vx, vy float64) {
	return dir * speed * math.Cos(angle), speed * math.Sin(angle)
}
