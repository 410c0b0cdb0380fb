package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
)

// Palette for surfaces and terminal chrome
var (
	RgbCourt     = core.RGBBlack
	RgbScore     = core.MustParseHex(constants.ScoreColor)
	RgbStatusBar = core.RGB{R: 26, G: 27, B: 38} // Tokyo Night background
	RgbStatusFg  = core.RGB{R: 180, G: 180, B: 180}
)

// TcellColor converts RGB to a tcell color
func TcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
