package audio

import (
	"math/rand"
	"sync"

	"github.com/lixenwraith/pong/constants"
)

// NotePicker draws chord notes uniformly at random
type NotePicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewNotePicker creates a picker seeded with seed
func NewNotePicker(seed int64) *NotePicker {
	return &NotePicker{rng: rand.New(rand.NewSource(seed))}
}

// Next returns one of the bounce chord frequencies
func (p *NotePicker) Next() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return constants.BounceChord[p.rng.Intn(len(constants.BounceChord))]
}
