package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/status"
	"github.com/mattn/go-runewidth"
)

// upperHalf draws the upper subpixel as foreground, the lower as background
const upperHalf = '▀'

// TerminalRenderer presents the court on a tcell screen with a status bar below it
type TerminalRenderer struct {
	screen tcell.Screen
	scene  *Scene
	canvas *Canvas
	stats  *status.Registry // optional, source of the rally counter
	muted  MuteSource       // optional, marks the status bar

	width, height int // screen cells
	layout        CourtLayout
}

// MuteSource reports whether the bounce cue is muted
type MuteSource interface {
	IsMuted() bool
}

// CourtLayout places the court cell grid on the screen
type CourtLayout struct {
	Cols, Rows int
	OffX, OffY int
}

// LayoutCourt fits a surface into a screen, leaving the status bar row free
func LayoutCourt(screenW, screenH int, surfaceW, surfaceH float64) CourtLayout {
	cols, rows, offX, offY := FitCourt(screenW, screenH-constants.StatusBarHeight, surfaceW, surfaceH)
	return CourtLayout{Cols: cols, Rows: rows, OffX: offX, OffY: offY}
}

// SurfaceY maps a screen row to a surface y at the row's center.
// Rows outside the court map outside the surface.
func (l CourtLayout) SurfaceY(row int, surfaceH float64) float64 {
	return (float64(row-l.OffY) + 0.5) * surfaceH / float64(l.Rows)
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, scene *Scene, stats *status.Registry, surfaceW, surfaceH float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		scene:  scene,
		stats:  stats,
		canvas: NewCanvas(surfaceW, surfaceH, 1, 1),
	}
	r.Resize(screen.Size())
	return r
}

// FitCourt returns the largest cell grid with the surface aspect ratio that fits
// cols x rows, and its centered offset. Subpixels are half a cell tall.
func FitCourt(cols, rows int, surfaceW, surfaceH float64) (w, h, offX, offY int) {
	cols, rows = max(cols, 1), max(rows, 1)
	aspect := surfaceW / surfaceH

	if float64(cols) > aspect*float64(2*rows) {
		h = rows
		w = max(int(math.Round(aspect*float64(2*rows))), 1)
	} else {
		w = cols
		h = max(int(math.Round(float64(cols)/aspect/2)), 1)
	}
	return w, h, (cols - w) / 2, (rows - h) / 2
}

// Resize refits the court to a new screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	sw, sh := r.canvas.Size()
	r.layout = LayoutCourt(width, height, sw, sh)
	r.canvas.Resize(r.layout.Cols, r.layout.Rows)
}

// Canvas exposes the rasterized court
func (r *TerminalRenderer) Canvas() *Canvas {
	return r.canvas
}

// SetMuteSource shows a mute marker in the status bar while m reports muted
func (r *TerminalRenderer) SetMuteSource(m MuteSource) {
	r.muted = m
}

// PointerY maps a screen row to a surface y for the current screen size.
// It reads only the screen and the fixed surface size, so the input goroutine may call it.
func (r *TerminalRenderer) PointerY(row int) float64 {
	sw, sh := r.canvas.Size()
	w, h := r.screen.Size()
	return LayoutCourt(w, h, sw, sh).SurfaceY(row, sh)
}

// fit picks up screen size changes since the last frame
func (r *TerminalRenderer) fit() {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.Resize(w, h)
	}
}

// RenderFrame draws the scene and the status bar, then shows the screen
func (r *TerminalRenderer) RenderFrame(w *engine.World) {
	r.fit()
	r.scene.Draw(r.canvas, w)

	r.screen.Fill(' ', tcell.StyleDefault.Background(TcellColor(RgbCourt)))
	r.present()
	r.drawStatusBar(StatusLine(w, r.rally(), r.muted != nil && r.muted.IsMuted()))
	r.screen.Show()
}

func (r *TerminalRenderer) rally() int64 {
	if r.stats == nil {
		return 0
	}
	return r.stats.Ints.Get(status.KeyRally).Load()
}

// StatusLine formats the bar shown under the court
func StatusLine(w *engine.World, rally int64, muted bool) string {
	mark := ""
	if muted {
		mark = "  muted"
	}
	return fmt.Sprintf(" %s  %d : %d  speed %.1f  rally %d%s  q quits",
		w.Variant, w.User.Score, w.AI.Score, w.Ball.Speed, rally, mark)
}

// RenderIdle draws only the status bar, used while the game is not running
func (r *TerminalRenderer) RenderIdle(message string) {
	r.fit()
	r.screen.Fill(' ', tcell.StyleDefault.Background(TcellColor(RgbCourt)))
	r.drawStatusBar(" " + message)
	r.screen.Show()
}

func (r *TerminalRenderer) present() {
	cols, rows := r.canvas.Grid()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			upper, lower := r.canvas.Cell(col, row)
			style := tcell.StyleDefault.Background(TcellColor(lower))
			ch := ' '
			if upper != lower {
				style = style.Foreground(TcellColor(upper))
				ch = upperHalf
			}
			r.screen.SetContent(r.layout.OffX+col, r.layout.OffY+row, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(text string) {
	y := r.height - 1
	if y < 0 || r.width <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(TcellColor(RgbStatusBar)).Foreground(TcellColor(RgbStatusFg))

	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	x := 0
	for _, ch := range runewidth.Truncate(text, r.width, "…") {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
