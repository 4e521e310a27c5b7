package testing

import (
	"sync"
	"time"

	"github.com/go-drift/marquee/pkg/animation"
)

// Harness pairs a FakeClock with a frame scheduler reading from it, standing
// in for a host's display loop.
type Harness struct {
	Clock     *FakeClock
	Scheduler *animation.FrameScheduler
}

// NewHarness creates a harness at Epoch with nothing scheduled.
func NewHarness() *Harness {
	clk := NewFakeClock()
	return &Harness{
		Clock:     clk,
		Scheduler: animation.NewFrameScheduler(clk),
	}
}

// Pump runs one frame at the current time and returns the number of
// callbacks that ran.
func (h *Harness) Pump() int {
	return h.Scheduler.Pump()
}

// Advance moves the clock by d and runs one frame.
func (h *Harness) Advance(d time.Duration) int {
	h.Clock.Advance(d)
	return h.Scheduler.Pump()
}

// PumpFrames runs n frames, the first at the current time and each
// following one interval later.
func (h *Harness) PumpFrames(n int, interval time.Duration) int {
	ran := 0
	for i := 0; i < n; i++ {
		if i > 0 {
			h.Clock.Advance(interval)
		}
		ran += h.Scheduler.Pump()
	}
	return ran
}

// Record subscribes a recorder through subscribe, typically a component's
// AddListener method, and stamps every callback with the harness clock.
func (h *Harness) Record(subscribe func(func([]float64)) func()) *Recorder {
	r := &Recorder{clock: h.Clock}
	r.unsubscribe = subscribe(r.observe)
	return r
}

// Recorder collects painted lane offsets.
type Recorder struct {
	mu          sync.Mutex
	clock       *FakeClock
	frames      []Frame
	unsubscribe func()
}

func (r *Recorder) observe(offsets []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame{
		AtMillis: r.clock.Since().Milliseconds(),
		Offsets:  append([]float64(nil), offsets...),
	})
}

// Frames returns the frames recorded so far.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

// Last returns the most recent frame and whether there is one.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Trace returns the recorded frames as a Trace.
func (r *Recorder) Trace() *Trace {
	return &Trace{Frames: r.Frames()}
}

// Stop unsubscribes the recorder.
func (r *Recorder) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
