// Package animation provides the frame timing primitives the marquee engine
// runs on.
//
// # Core Components
//
//   - [Clock]: the time source. The package clock uses system time and can be
//     swapped with [SetClock]; a [FrameScheduler] may also carry its own.
//
//   - [FrameScheduler]: the host's per-frame callback, modelled on a browser
//     animation frame request. Callbacks are one-shot: a loop that wants to
//     keep running requests its next frame from inside the current one.
//
// # Basic Usage
//
// The host owns the frame loop and pumps the scheduler once per display
// refresh. Components request frames while they have work to do:
//
//	sched := animation.NewFrameScheduler(nil)
//	var loop animation.FrameCallback
//	loop = func(now time.Time) {
//	    paint(now)
//	    id = sched.RequestFrame(loop)
//	}
//	id = sched.RequestFrame(loop)
//
//	// In the host's refresh handler
//	sched.Pump()
//
//	// On teardown
//	sched.CancelFrame(id)
package animation

import (
	"slices"
	"sync"
	"time"
)

// FrameID identifies a pending frame request. Zero is never issued and can
// be used to mean "no frame pending".
type FrameID uint64

// FrameCallback receives the timestamp shared by every callback run in the
// same frame.
type FrameCallback func(now time.Time)

// FrameScheduler queues one-shot frame callbacks and runs them when the host
// pumps a frame.
//
// Callbacks requested while a frame is being pumped run on the next Pump,
// never the current one, so a loop that re-requests itself from its own
// callback cannot run twice per frame. All methods are safe for concurrent
// use; callbacks run without the scheduler lock held.
type FrameScheduler struct {
	mu       sync.Mutex
	clock    Clock
	nextID   FrameID
	pending  map[FrameID]FrameCallback
	order    []FrameID
	inflight map[FrameID]struct{}
	frames   uint64
}

// NewFrameScheduler creates a scheduler reading time from c. A nil clock
// uses the package clock.
func NewFrameScheduler(c Clock) *FrameScheduler {
	return &FrameScheduler{
		clock:   c,
		pending: make(map[FrameID]FrameCallback),
	}
}

// Now returns the current time from the scheduler's clock.
func (s *FrameScheduler) Now() time.Time {
	if s.clock == nil {
		return Now()
	}
	return s.clock.Now()
}

// RequestFrame schedules cb to run on the next Pump.
func (s *FrameScheduler) RequestFrame(cb FrameCallback) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.pending[id] = cb
	s.order = append(s.order, id)
	return id
}

// CancelFrame removes a pending request. Cancelling an unknown, already run
// or zero id is a no-op. A request cancelled by an earlier callback of the
// frame currently being pumped does not run.
func (s *FrameScheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; ok {
		delete(s.pending, id)
		if i := slices.Index(s.order, id); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	}
	delete(s.inflight, id)
}

// Pending returns the number of requests waiting for the next frame.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Frames returns how many frames have been pumped.
func (s *FrameScheduler) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Pump runs every callback that was pending when Pump was called, in request
// order, all with the same timestamp. Returns the number of callbacks run.
// This should be called once per frame by the host.
func (s *FrameScheduler) Pump() int {
	s.mu.Lock()
	s.frames++
	if len(s.pending) == 0 {
		s.order = s.order[:0]
		s.mu.Unlock()
		return 0
	}
	order := s.order
	callbacks := s.pending
	s.order = nil
	s.pending = make(map[FrameID]FrameCallback)
	s.inflight = make(map[FrameID]struct{}, len(callbacks))
	for id := range callbacks {
		s.inflight[id] = struct{}{}
	}
	s.mu.Unlock()

	now := s.Now()
	ran := 0
	for _, id := range order {
		cb, ok := callbacks[id]
		if !ok {
			continue
		}
		s.mu.Lock()
		_, live := s.inflight[id]
		delete(s.inflight, id)
		s.mu.Unlock()
		if !live || cb == nil {
			continue
		}
		cb(now)
		ran++
	}

	s.mu.Lock()
	s.inflight = nil
	s.mu.Unlock()
	return ran
}
