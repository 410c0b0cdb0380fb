package constants

// Surface Variants
const (
	// VariantAtari is the 1000x600 court with a background image
	VariantAtari = "atari"
	// VariantClassic is the 800x400 court on black
	VariantClassic = "classic"
)

// Variant describes a court layout
type Variant struct {
	Name          string
	Width, Height float64
	BallColor     string
	UserColor     string
	AIColor       string
	// NeedsBackground gates the frame driver on a successful image load
	NeedsBackground bool
}

// Variants maps variant names to layouts
var Variants = map[string]Variant{
	VariantAtari: {
		Name:            VariantAtari,
		Width:           1000,
		Height:          600,
		BallColor:       "#0091FF",
		UserColor:       "#F1F1E6",
		AIColor:         "#F6F9FF",
		NeedsBackground: true,
	},
	VariantClassic: {
		Name:      VariantClassic,
		Width:     800,
		Height:    400,
		BallColor: "#FFFFFF",
		UserColor: "#FF5733",
		AIColor:   "#33F9FF",
	},
}

// Score Text
const (
	ScoreColor = "#FFFFFF"

	// ScoreTextHeight is the glyph height in surface pixels
	ScoreTextHeight = 75.0

	// ScoreLeftFraction and ScoreRightFraction place score baselines across the width
	ScoreLeftFraction  = 0.25
	ScoreRightFraction = 0.75

	// ScoreHeightFraction places score baselines down the height
	ScoreHeightFraction = 0.2
)

// Terminal Frontend
const (
	// StatusBarHeight is the rows reserved below the court
	StatusBarHeight = 1

	// PointerKeyStep is surface pixels moved per arrow key press
	PointerKeyStep = 25.0

	// EventQueueSize is the buffered input channel length
	EventQueueSize = 256
)
