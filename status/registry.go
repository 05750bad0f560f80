package status

import (
	"fmt"
	"sync/atomic"
)

// Registry collects search and grid counters
// Writers cache metric pointers; readers snapshot through Lines
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Count increments the integer metric key by delta
func (r *Registry) Count(key string, delta int64) {
	r.Ints.Get(key).Add(delta)
}

// Accumulate adds delta to the float metric key
func (r *Registry) Accumulate(key string, delta float64) {
	r.Floats.Get(key).Add(delta)
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key=value", integers first, each group in key order
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", key, v.Get()))
	})
	return lines
}
