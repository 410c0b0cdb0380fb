package terminal

import (
	"strings"

	"github.com/pkg/errors"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (c ColorMode) String() string {
	if c == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a flag or config value; "auto" and "" detect from environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, errors.Errorf("unknown color mode %q", s)
	}
}
