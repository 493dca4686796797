package status

import "sync/atomic"

// Metric keys
const (
	KeyFrames     = "frames"
	KeyCollisions = "collisions"
	KeyWallHits   = "wall_hits"
	KeyParticles  = "particles"
	KeyFPS        = "fps"
	KeyMaxImpact  = "max_impact"
)

// Registry is the central metrics facade
// The frame loop caches pointers once; readers on other goroutines load atomics
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

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
