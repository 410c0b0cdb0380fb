package engine

import "time"

// Ticker delivers frame ticks to the driver
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// realTicker wraps time.Ticker
type realTicker struct {
	t *time.Ticker
}

// NewTicker creates a wall-clock ticker at a fixed interval
func NewTicker(interval time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(interval)}
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }
