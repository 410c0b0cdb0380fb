package constants

import (
	"math"
	"time"
)

// Game Loop Timing Constants
const (
	// FramesPerSecond is the fixed tick rate of the frame driver
	FramesPerSecond = 50

	// FrameUpdateInterval is one physics step followed by one render
	FrameUpdateInterval = time.Second / FramesPerSecond
)

// Ball Constants
const (
	// BallRadius is the ball radius in surface pixels
	BallRadius = 10.0

	// BallInitialSpeed is the speed applied after every reset
	BallInitialSpeed = 7.0

	// BallInitialVelocityX and BallInitialVelocityY are the serve velocity at startup
	BallInitialVelocityX = 5.0
	BallInitialVelocityY = 5.0

	// BallSpeedIncrement is added to speed after every paddle return, no upper bound
	BallSpeedIncrement = 0.1
)

// Paddle Constants
const (
	PaddleWidth  = 10.0
	PaddleHeight = 100.0

	// AITrackingGain is the proportional gain of the AI paddle controller
	AITrackingGain = 0.1
)

// MaxBounceAngle is the reflection angle at the paddle edge (45 degrees)
const MaxBounceAngle = math.Pi / 4
