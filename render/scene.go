package render

import (
	"image"
	"strconv"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// Scene draws the world onto a surface. Draw never mutates the world.
type Scene struct {
	Background image.Image // nil draws a plain court
}

// NewScene creates a scene with an optional background
func NewScene(bg image.Image) *Scene {
	return &Scene{Background: bg}
}

// Draw renders one frame: background, paddles, ball, scores
func (s *Scene) Draw(surf Surface, w *engine.World) {
	surf.Clear(RgbCourt)
	if s.Background != nil {
		surf.DrawImage(s.Background)
	}

	surf.FillRect(w.User.Rect(), w.User.Color)
	surf.FillRect(w.AI.Rect(), w.AI.Color)
	surf.FillCircle(w.Ball.X, w.Ball.Y, w.Ball.Radius, w.Ball.Color)

	baseline := w.Height * constants.ScoreHeightFraction
	surf.DrawText(strconv.Itoa(w.User.Score), w.Width*constants.ScoreLeftFraction, baseline, constants.ScoreTextHeight, RgbScore)
	surf.DrawText(strconv.Itoa(w.AI.Score), w.Width*constants.ScoreRightFraction, baseline, constants.ScoreTextHeight, RgbScore)
}
