package marquee

import (
	"testing"
	"time"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/errors"
)

type captureHandler struct {
	errs   []*errors.MarqueeError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.MarqueeError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError)   { h.panics = append(h.panics, err) }

func TestMarquee_FrameAfterDisposeIsReported(t *testing.T) {
	h := &captureHandler{}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	clk := animation.ClockFunc(func() time.Time { return t0 })
	m, err := New(sampleItems(3), DefaultConfig(), WithClock(clk))
	if err != nil {
		t.Fatal(err)
	}
	m.Mount(800)
	m.Dispose()

	// Simulate a host that kept a stale callback around.
	m.onFrame(t0.Add(time.Second))

	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindLifecycle {
		t.Fatalf("expected one lifecycle error, got %+v", h.errs)
	}
}

func TestMarquee_ListenerPanicIsRecovered(t *testing.T) {
	h := &captureHandler{}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	sched := animation.NewFrameScheduler(animation.ClockFunc(func() time.Time { return t0 }))
	m, err := New(sampleItems(3), DefaultConfig(), WithScheduler(sched))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Dispose()
	m.AddListener(func([]float64) { panic("paint failed") })
	m.Mount(800)

	sched.Pump()
	if len(h.panics) != 1 || h.panics[0].Op != "marquee.frame" {
		t.Fatalf("expected recovered panic from marquee.frame, got %+v", h.panics)
	}
	if sched.Pending() != 1 {
		t.Error("the loop should keep running after a listener panic")
	}
}

func TestMarquee_MountAfterDisposeIsReported(t *testing.T) {
	h := &captureHandler{}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	m, err := New(nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m.Dispose()
	m.Mount(800)
	if len(h.errs) != 1 || h.errs[0].Op != "marquee.Mount" {
		t.Fatalf("expected mount-after-dispose error, got %+v", h.errs)
	}
	if m.Scheduler().Pending() != 0 {
		t.Error("Mount after Dispose must not schedule a frame")
	}
}

func TestMarquee_UnsubscribeListener(t *testing.T) {
	sched := animation.NewFrameScheduler(animation.ClockFunc(func() time.Time { return t0 }))
	m, _ := New(sampleItems(3), DefaultConfig(), WithScheduler(sched))
	defer m.Dispose()

	calls := 0
	unsubscribe := m.AddListener(func([]float64) { calls++ })
	m.Mount(800)
	sched.Pump()
	unsubscribe()
	sched.Pump()

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}
