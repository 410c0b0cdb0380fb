package engine

import (
	"sync"
	"time"
)

// MockTicker is a manually driven ticker for tests
type MockTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	now     time.Time
	stopped bool
}

// NewMockTicker creates a mock ticker starting at the given time
func NewMockTicker(start time.Time) *MockTicker {
	return &MockTicker{
		ch:  make(chan time.Time),
		now: start,
	}
}

func (m *MockTicker) C() <-chan time.Time { return m.ch }

// Tick advances the mock clock and blocks until the driver receives the tick
func (m *MockTicker) Tick(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	m.mu.Unlock()
	m.ch <- now
}

func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

// Stopped reports whether Stop was called
func (m *MockTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}
