package engine

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/status"
)

// RenderFunc draws the world; it must not mutate it
type RenderFunc func(w *World)

// DriverConfig wires the driver's collaborators; nil fields get defaults
type DriverConfig struct {
	Ticker Ticker
	Sound  SoundPlayer
	Render RenderFunc
	Status *status.Registry
}

// Driver is the frame driver: physics step then render, once per tick
type Driver struct {
	world  *World
	ticker Ticker
	sound  SoundPlayer
	render RenderFunc

	// Cached metric pointers
	statFrames    *atomic.Int64
	statWall      *atomic.Int64
	statHits      *atomic.Int64
	statRally     *atomic.Int64
	statRallyMax  *atomic.Int64
	statScoreUser *atomic.Int64
	statScoreAI   *atomic.Int64
	statSpeedPeak *status.AtomicFloat
}

// NewDriver creates a driver owning w
func NewDriver(w *World, cfg DriverConfig) *Driver {
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	sound := cfg.Sound
	if sound == nil {
		sound = silentPlayer{}
	}
	render := cfg.Render
	if render == nil {
		render = func(*World) {}
	}

	d := &Driver{
		world:         w,
		ticker:        cfg.Ticker,
		sound:         sound,
		render:        render,
		statFrames:    reg.Ints.Get(status.KeyFrames),
		statWall:      reg.Ints.Get(status.KeyWallBounces),
		statHits:      reg.Ints.Get(status.KeyPaddleHits),
		statRally:     reg.Ints.Get(status.KeyRally),
		statRallyMax:  reg.Ints.Get(status.KeyRallyMax),
		statScoreUser: reg.Ints.Get(status.KeyScoreUser),
		statScoreAI:   reg.Ints.Get(status.KeyScoreAI),
		statSpeedPeak: reg.Floats.Get(status.KeySpeedPeak),
	}
	d.statSpeedPeak.Max(w.Ball.Speed)
	return d
}

// World returns the driven world. Only the driver goroutine may mutate it.
func (d *Driver) World() *World {
	return d.world
}

// Handle applies an input event, returns false when the driver should stop
func (d *Driver) Handle(ev Event) bool {
	switch ev.Type {
	case EventPointer:
		d.world.MovePointer(ev.Y)
	case EventQuit:
		return false
	}
	return true
}

// Advance runs one physics step and reacts to its outcome (sound, stats, log)
func (d *Driver) Advance() StepResult {
	res := d.world.Step()
	d.statFrames.Add(1)

	if res.WallBounce {
		d.statWall.Add(1)
		d.sound.PlayBounce()
	}

	if res.PaddleHit != SideNone {
		d.statHits.Add(1)
		d.sound.PlayBounce()
		rally := d.statRally.Add(1)
		if rally > d.statRallyMax.Load() {
			d.statRallyMax.Store(rally)
		}
		// Speed was incremented by the hit
		d.statSpeedPeak.Max(d.world.Ball.Speed)
	}

	if res.Scorer != SideNone {
		d.statRally.Store(0)
		d.statScoreUser.Store(int64(d.world.User.Score))
		d.statScoreAI.Store(int64(d.world.AI.Score))
		log.Printf("score: %s scored, user %d - ai %d", res.Scorer, d.world.User.Score, d.world.AI.Score)
	}

	return res
}

// Frame runs Advance followed by the render callback
func (d *Driver) Frame() StepResult {
	res := d.Advance()
	d.render(d.world)
	return res
}

// Run ticks at the fixed frame rate until ctx is done or a quit event arrives.
// Input events are applied as they arrive, between ticks.
func (d *Driver) Run(ctx context.Context, events <-chan Event) error {
	ticker := d.ticker
	if ticker == nil {
		ticker = NewTicker(constants.FrameUpdateInterval)
	}
	defer ticker.Stop()

	// Initial frame so the court is visible before the first tick
	d.render(d.world)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				// Input source gone; keep ticking until cancelled
				events = nil
				continue
			}
			if !d.Handle(ev) {
				return nil
			}

		case <-ticker.C():
			d.Frame()
		}
	}
}
