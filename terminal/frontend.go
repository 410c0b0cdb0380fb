package terminal

import (
	"context"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/status"
)

// Frontend binds a tcell screen to the frame driver
type Frontend struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	input    *InputPump
}

// NewFrontend creates a frontend for a court of surfaceW x surfaceH pixels
func NewFrontend(screen tcell.Screen, background image.Image, stats *status.Registry, surfaceW, surfaceH float64) *Frontend {
	renderer := render.NewTerminalRenderer(screen, render.NewScene(background), stats, surfaceW, surfaceH)
	return &Frontend{
		screen:   screen,
		renderer: renderer,
		input:    NewInputPump(screen, renderer, surfaceH),
	}
}

// SetMuter binds the 'm' key to m and shows its state in the status bar
func (f *Frontend) SetMuter(m Muter) {
	f.input.muter = m
	f.renderer.SetMuteSource(m)
}

// Render draws one frame; pass it as the driver's render callback
func (f *Frontend) Render(w *engine.World) {
	f.renderer.RenderFrame(w)
}

// Run feeds input to the driver and blocks until it stops
func (f *Frontend) Run(ctx context.Context, d *engine.Driver) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan engine.Event, constants.EventQueueSize)
	Go(func() { f.input.Run(ctx, events) })

	return d.Run(ctx, events)
}

// Idle shows message on an empty court until quit or ctx is done.
// Used when the game cannot start.
func (f *Frontend) Idle(ctx context.Context, message string) error {
	stop := context.AfterFunc(ctx, func() {
		f.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	f.renderer.RenderIdle(message)
	for {
		ev := f.screen.PollEvent()
		switch ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			f.renderer.RenderIdle(message)
		default:
			if e, ok := f.input.Translate(ev); ok && e.Type == engine.EventQuit {
				return nil
			}
		}
	}
}
