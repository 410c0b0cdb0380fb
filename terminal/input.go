package terminal

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// Muter toggles the bounce cue, returning true when sound is audible
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// RowMapper maps a screen row to a surface y
type RowMapper interface {
	PointerY(row int) float64
}

// InputPump turns tcell events into engine events.
// It runs on the poll goroutine and never touches the world.
type InputPump struct {
	screen tcell.Screen
	rows   RowMapper

	// Virtual pointer moved by keys, snapped to the mouse on motion
	pointer float64

	muter Muter // optional, bound to 'm'
}

// NewInputPump creates a pump with the virtual pointer at the court's vertical center
func NewInputPump(screen tcell.Screen, rows RowMapper, surfaceH float64) *InputPump {
	return &InputPump{
		screen:  screen,
		rows:    rows,
		pointer: surfaceH / 2,
	}
}

// Pointer returns the virtual pointer position in surface pixels
func (p *InputPump) Pointer() float64 {
	return p.pointer
}

// Translate maps one tcell event; ok is false for events the game ignores
func (p *InputPump) Translate(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		_, row := ev.Position()
		p.pointer = p.rows.PointerY(row)
		return engine.PointerAt(p.pointer), true

	case *tcell.EventKey:
		return p.translateKey(ev)
	}
	return engine.Event{}, false
}

func (p *InputPump) translateKey(ev *tcell.EventKey) (engine.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Event{Type: engine.EventQuit}, true
	case tcell.KeyUp:
		return p.nudge(-constants.PointerKeyStep), true
	case tcell.KeyDown:
		return p.nudge(constants.PointerKeyStep), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return engine.Event{Type: engine.EventQuit}, true
		case 'k':
			return p.nudge(-constants.PointerKeyStep), true
		case 'j':
			return p.nudge(constants.PointerKeyStep), true
		case 'm':
			if p.muter != nil {
				log.Printf("audio: audible=%v", p.muter.ToggleMute())
			}
		}
	}
	return engine.Event{}, false
}

func (p *InputPump) nudge(dy float64) engine.Event {
	p.pointer += dy
	return engine.PointerAt(p.pointer)
}

// Run polls the screen until it is finalized or ctx is done
func (p *InputPump) Run(ctx context.Context, out chan<- engine.Event) {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		e, ok := p.Translate(ev)
		if !ok {
			continue
		}
		select {
		case out <- e:
		case <-ctx.Done():
			return
		}
	}
}
