package render

import (
	"testing"

	"github.com/lixenwraith/pong/core"
)

func TestTcellColorRoundTrip(t *testing.T) {
	tests := []core.RGB{
		core.RGBBlack,
		core.RGBWhite,
		{R: 0, G: 0x91, B: 0xFF},
		RgbStatusBar,
	}

	for _, c := range tests {
		r, g, b := TcellColor(c).RGB()
		if uint8(r) != c.R || uint8(g) != c.G || uint8(b) != c.B {
			t.Errorf("TcellColor(%+v) round-trip gave (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestScoreColorIsWhite(t *testing.T) {
	if RgbScore != core.RGBWhite {
		t.Errorf("Expected white score text, got %+v", RgbScore)
	}
}
