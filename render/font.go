package render

import "github.com/lixenwraith/pong/core"

const (
	glyphCols = 3
	glyphRows = 5
)

// glyphs is a 3x5 bitmap font, one string per row, '#' is lit
var glyphs = map[rune][glyphRows]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'-': {"...", "...", "###", "...", "..."},
	' ': {"...", "...", "...", "...", "..."},
}

// TextRects returns the lit cells of text as rectangles.
// x is the left edge, baseline the bottom edge. Unknown runes render as blanks.
func TextRects(text string, x, baseline, height float64) []core.Rect {
	unit := height / glyphRows
	top := baseline - height

	var rects []core.Rect
	for i, r := range []rune(text) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		gx := x + float64(i*(glyphCols+1))*unit
		for row := 0; row < glyphRows; row++ {
			for col := 0; col < glyphCols; col++ {
				if g[row][col] != '#' {
					continue
				}
				rects = append(rects, core.Rect{
					X:      gx + float64(col)*unit,
					Y:      top + float64(row)*unit,
					Width:  unit,
					Height: unit,
				})
			}
		}
	}
	return rects
}
