package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the frame driver
const (
	KeyFrames      = "engine.frames"
	KeyWallBounces = "engine.wall_bounces"
	KeyPaddleHits  = "engine.paddle_hits"
	KeyRally       = "engine.rally"
	KeyRallyMax    = "engine.rally_max"
	KeyScoreUser   = "score.user"
	KeyScoreAI     = "score.ai"
	KeySpeedPeak   = "ball.speed_peak"
)

// Registry is the central metrics facade
// Writers cache pointers during init; the frame loop writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Summary renders all metrics as "key=value" pairs, ints first
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
