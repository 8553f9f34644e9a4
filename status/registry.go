// Package status holds lock-free counters and gauges shared between the
// arcade shell and its games. Writers cache the pointer returned by Get and
// store into it directly; readers sample through Range or the typed getters.
package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Badge keys written by the router and read by the menu
const (
	BadgePrefix = "badge."
	ActiveGame  = "arcade.active"
	FrameCount  = "frames.flushed"
	AudioMuted  = "audio.muted"
)

// Registry is the metrics facade handed to every component through the app context
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Badge returns the badge gauge for a game ID
func (r *Registry) Badge(gameID string) *AtomicFloat {
	return r.Floats.Get(BadgePrefix + gameID)
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as "key=value", sorted by key
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, k+"="+strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%g", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%q", k, v.Load()))
	})
	sort.Strings(out)
	return out
}
