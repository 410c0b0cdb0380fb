// Package window hosts the game in a native ebiten window of the exact surface size.
// Ebiten calls Update at the fixed tick rate and Draw once per displayed frame,
// both on the main goroutine, so the driver stays the single writer.
// Draw runs at display rate independently of the 50 TPS Update, so one render
// per physics step holds strictly only on the terminal path.
package window

import (
	"context"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render"
)

// Game adapts the frame driver to ebiten's loop
type Game struct {
	ctx     context.Context
	driver  *engine.Driver
	scene   *render.Scene
	surface *Surface

	// Blank court with a message instead of the game
	idle    bool
	message string

	lastCursorY int
	cursorSeen  bool

	muter interface{ ToggleMute() bool } // optional, bound to M
}

// NewGame creates a running game
func NewGame(ctx context.Context, d *engine.Driver, background image.Image) *Game {
	w := d.World()
	return &Game{
		ctx:     ctx,
		driver:  d,
		scene:   render.NewScene(background),
		surface: NewSurface(w.Width, w.Height),
	}
}

// NewIdleGame creates a window that only shows message until closed
func NewIdleGame(ctx context.Context, d *engine.Driver, message string) *Game {
	g := NewGame(ctx, d, nil)
	g.idle = true
	g.message = message
	return g
}

// SetMuter binds the M key to m
func (g *Game) SetMuter(m interface{ ToggleMute() bool }) {
	g.muter = m
}

// Update runs one physics step with the current cursor position
func (g *Game) Update() error {
	quit := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	if g.muter != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("audio: audible=%v", g.muter.ToggleMute())
	}
	_, y := ebiten.CursorPosition()
	return g.tick(y, quit)
}

// tick holds Update's logic apart from ebiten's input state
func (g *Game) tick(cursorY int, quit bool) error {
	if quit || g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.idle {
		return nil
	}

	// First sample is only a baseline; the paddle follows actual movement
	if g.cursorSeen && cursorY != g.lastCursorY {
		g.driver.Handle(engine.PointerAt(float64(cursorY)))
	}
	g.lastCursorY, g.cursorSeen = cursorY, true
	g.driver.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.idle {
		screen.Fill(color.Black)
		ebitenutil.DebugPrintAt(screen, g.message, 10, 10)
		return
	}
	g.surface.Bind(screen)
	g.scene.Draw(g.surface, g.driver.World())
}

// Layout keeps the logical screen at the surface size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed, a quit key is pressed or ctx is done
func Run(g *Game) error {
	w, h := g.surface.Size()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(constants.FramesPerSecond)
	return ebiten.RunGame(g)
}
