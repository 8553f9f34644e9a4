package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neon-arcade/status"
)

// FrameID identifies one pending frame request; zero is never issued
type FrameID uint64

// FrameFunc receives the display timestamp of the frame it runs in
type FrameFunc func(now time.Time)

// Display is the refresh signal games schedule against
// A request fires once, on the next refresh, unless cancelled first
type Display interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
	Now() time.Time
}

// Refresher is the Display driven by the main loop's frame ticker
// Not safe for concurrent use: requests, cancels and flushes all happen on the game goroutine
type Refresher struct {
	clock   TimeProvider
	nextID  FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID

	// Requests taken by the running Flush; cancel must reach them too
	inflight map[FrameID]FrameFunc

	statFlushed *atomic.Int64
}

// NewRefresher creates a Refresher reading time from clock; reg may be nil
func NewRefresher(clock TimeProvider, reg *status.Registry) *Refresher {
	r := &Refresher{
		clock:   clock,
		pending: make(map[FrameID]FrameFunc),
	}
	if reg != nil {
		r.statFlushed = reg.Ints.Get(status.FrameCount)
	} else {
		r.statFlushed = new(atomic.Int64)
	}
	return r
}

// RequestFrame queues fn for the next Flush
func (r *Refresher) RequestFrame(fn FrameFunc) FrameID {
	r.nextID++
	id := r.nextID
	r.pending[id] = fn
	r.order = append(r.order, id)
	return id
}

// CancelFrame drops a pending request; unknown or fired IDs are ignored
func (r *Refresher) CancelFrame(id FrameID) {
	delete(r.pending, id)
	if r.inflight != nil {
		delete(r.inflight, id)
	}
}

// Now returns the clock time
func (r *Refresher) Now() time.Time {
	return r.clock.Now()
}

// Pending returns the number of queued requests
func (r *Refresher) Pending() int {
	return len(r.pending)
}

// Flush runs every request queued before the call, in request order
// Requests made by the callbacks wait for the next Flush
func (r *Refresher) Flush() int {
	if len(r.order) == 0 {
		return 0
	}

	now := r.clock.Now()
	order := r.order
	r.inflight = r.pending
	r.order = nil
	r.pending = make(map[FrameID]FrameFunc, len(r.inflight))

	ran := 0
	for _, id := range order {
		fn, ok := r.inflight[id]
		if !ok {
			continue
		}
		delete(r.inflight, id)
		fn(now)
		ran++
	}
	r.inflight = nil
	r.statFlushed.Add(1)
	return ran
}
