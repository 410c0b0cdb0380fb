package engine

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/physics"
)

// StepResult reports what happened during one physics step
type StepResult struct {
	WallBounce bool
	PaddleHit  Side // paddle that returned the ball, SideNone if none
	Scorer     Side // side that scored, SideNone if the rally continues
}

// Bounces returns the number of audible bounces in the step
func (r StepResult) Bounces() int {
	n := 0
	if r.WallBounce {
		n++
	}
	if r.PaddleHit != SideNone {
		n++
	}
	return n
}

// Step advances the world by one fixed frame (1/50 s).
// Arithmetic is unchecked: no clamping, no speed cap, no positional correction.
func (w *World) Step() StepResult {
	var res StepResult
	b := &w.Ball

	b.X += b.VX
	b.Y += b.VY

	// Proportional AI tracking toward the ball's vertical position
	w.AI.Y += (b.Y - (w.AI.Y + w.AI.Height/2)) * constants.AITrackingGain

	if b.Y+b.Radius > w.Height || b.Y-b.Radius < 0 {
		b.VY = -b.VY
		res.WallBounce = true
	}

	// Only the paddle on the ball's half is tested
	side, dir := SideAI, -1.0
	if b.X < w.Width/2 {
		side, dir = SideUser, 1.0
	}
	p := w.Paddle(side)

	if physics.Overlaps(p.Rect(), b.Bounds()) {
		angle := physics.ReflectionAngle(physics.CollidePoint(p.Rect(), b.Y))
		b.VX, b.VY = physics.Deflect(dir, b.Speed, angle)
		b.Speed += constants.BallSpeedIncrement
		res.PaddleHit = side
	}

	if b.X-b.Radius < 0 {
		w.AI.Score++
		res.Scorer = SideAI
		w.ResetBall()
	} else if b.X+b.Radius > w.Width {
		w.User.Score++
		res.Scorer = SideUser
		w.ResetBall()
	}

	return res
}

// ResetBall recenters the ball and restores the initial speed.
// VX is negated regardless of who scored; VY is kept.
func (w *World) ResetBall() {
	b := &w.Ball
	b.X, b.Y = w.Center()
	b.Speed = constants.BallInitialSpeed
	b.VX = -b.VX
}
