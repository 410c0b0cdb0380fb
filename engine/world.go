package engine

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
)

// Side identifies a paddle owner
type Side uint8

const (
	SideNone Side = iota
	SideUser
	SideAI
)

func (s Side) String() string {
	switch s {
	case SideUser:
		return "user"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Ball is the single moving body. Speed is the magnitude reapplied on each
// paddle return; between returns VX and VY evolve independently.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Speed  float64
	Color  core.RGB
}

// Bounds returns the ball's bounding square
func (b *Ball) Bounds() core.Rect {
	return core.SquareAround(b.X, b.Y, b.Radius)
}

// Paddle moves only vertically; X is fixed at construction
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Score         int
	Color         core.RGB
}

// Rect returns the paddle's bounding box
func (p *Paddle) Rect() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// World is the complete mutable game state, owned by a single writer
type World struct {
	Variant       string
	Width, Height float64

	Ball Ball
	User Paddle
	AI   Paddle
}

// NewWorld builds the initial state for a court variant
func NewWorld(v constants.Variant) *World {
	w := &World{
		Variant: v.Name,
		Width:   v.Width,
		Height:  v.Height,
	}

	paddleY := (v.Height - constants.PaddleHeight) / 2

	w.Ball = Ball{
		X:      v.Width / 2,
		Y:      v.Height / 2,
		Radius: constants.BallRadius,
		VX:     constants.BallInitialVelocityX,
		VY:     constants.BallInitialVelocityY,
		Speed:  constants.BallInitialSpeed,
		Color:  core.MustParseHex(v.BallColor),
	}
	w.User = Paddle{
		X:      0,
		Y:      paddleY,
		Width:  constants.PaddleWidth,
		Height: constants.PaddleHeight,
		Color:  core.MustParseHex(v.UserColor),
	}
	w.AI = Paddle{
		X:      v.Width - constants.PaddleWidth,
		Y:      paddleY,
		Width:  constants.PaddleWidth,
		Height: constants.PaddleHeight,
		Color:  core.MustParseHex(v.AIColor),
	}

	return w
}

// Center returns the surface midpoint
func (w *World) Center() (float64, float64) {
	return w.Width / 2, w.Height / 2
}

// Paddle returns the paddle for a side, nil for SideNone
func (w *World) Paddle(s Side) *Paddle {
	switch s {
	case SideUser:
		return &w.User
	case SideAI:
		return &w.AI
	default:
		return nil
	}
}

// MovePointer centers the user paddle on a pointer's vertical surface coordinate.
// The paddle is not clamped and may leave the court.
func (w *World) MovePointer(y float64) {
	w.User.Y = y - w.User.Height/2
}
