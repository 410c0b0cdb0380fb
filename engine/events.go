// Package engine owns the Pong world state and drives it on a fixed tick.
//
// Two event sources feed one goroutine: a ticker firing at the frame rate and an
// input queue carrying pointer positions. Only the goroutine running Driver.Run
// mutates the World, so no locking is required around physics or rendering.
// Pointer events between two ticks are applied in order; the physics step sees
// whatever position was written last.
package engine

// EventType identifies an input event
type EventType uint8

const (
	// EventPointer moves the user paddle so it is centered on Y (surface pixels)
	EventPointer EventType = iota
	// EventQuit stops the driver
	EventQuit
)

// Event is an input message for the driver
type Event struct {
	Type EventType
	Y    float64
}

// PointerAt builds a pointer event
func PointerAt(y float64) Event {
	return Event{Type: EventPointer, Y: y}
}
