package marquee

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/errors"
)

// Marquee owns the state of one marquee and drives it from a frame
// scheduler.
//
// At most one frame request is pending at any time. The frame handler
// requests the next frame itself, and only while the marquee is visible;
// becoming visible again requests a fresh one. Control methods (Resize,
// PointerMove, PointerLeave, ObserveVisibility) apply immediately through
// the pure State transitions, so several events between two frames leave
// only the last resulting epoch for the next frame to read.
//
// Always call Dispose when done. It cancels the pending frame and
// disconnects the visibility gate before returning.
type Marquee struct {
	mu        sync.Mutex
	cfg       Config
	items     []Item
	scheduler *animation.FrameScheduler
	gate      *VisibilityGate
	state     State
	frame     animation.FrameID
	mounted   bool
	disposed  bool

	listeners      map[int]func(offsets []float64)
	nextListenerID int
}

// Option configures a Marquee.
type Option func(*Marquee)

// WithScheduler drives the marquee from s instead of a private scheduler.
func WithScheduler(s *animation.FrameScheduler) Option {
	return func(m *Marquee) {
		if s != nil {
			m.scheduler = s
		}
	}
}

// WithClock gives the private scheduler a clock. It has no effect when
// combined with WithScheduler.
func WithClock(c animation.Clock) Option {
	return func(m *Marquee) {
		m.scheduler = animation.NewFrameScheduler(c)
	}
}

// New creates an unmounted marquee over items. The item slice is copied.
func New(items []Item, cfg Config, opts ...Option) (*Marquee, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new marquee: %w", err)
	}
	m := &Marquee{
		cfg:       cfg,
		items:     append([]Item(nil), items...),
		gate:      NewVisibilityGate(cfg),
		listeners: make(map[int]func([]float64)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scheduler == nil {
		m.scheduler = animation.NewFrameScheduler(nil)
	}
	return m, nil
}

// Scheduler returns the scheduler the host must pump once per frame.
func (m *Marquee) Scheduler() *animation.FrameScheduler {
	return m.scheduler
}

// Config returns the marquee's configuration.
func (m *Marquee) Config() Config {
	return m.cfg
}

// Mount builds the layout for a viewport of widthPx and starts the loop.
// Mounting twice is a no-op; mounting after Dispose is reported and ignored.
func (m *Marquee) Mount(widthPx float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		errors.Report(errors.New("marquee.Mount", errors.KindLifecycle, "mount after dispose"))
		return
	}
	if m.mounted {
		return
	}
	now := m.scheduler.Now()
	layout := BuildLayout(m.items, Classify(widthPx, m.cfg), nil)
	m.state = NewState(layout, now)
	m.state.Visible = m.gate.Visible()
	m.mounted = true
	m.requestFrameLocked()
}

// Resize reclassifies the viewport. Crossing a breakpoint rebuilds the lane
// model and re-epochs so the lanes continue from where they are.
func (m *Marquee) Resize(widthPx float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live() {
		return
	}
	bp := Classify(widthPx, m.cfg)
	if bp == m.state.Layout.Breakpoint {
		return
	}
	prev := m.state.Layout
	layout := BuildLayout(m.items, bp, &prev)
	m.state = WithLayout(m.state, m.cfg, layout, m.scheduler.Now())
}

// PointerMove updates the hover zone for a pointer at (x, y) over a marquee
// occupying bounds. Ignored while hidden.
func (m *Marquee) PointerMove(x, y float64, bounds Rect) {
	m.setHover(ZoneAt(x, y, bounds))
}

// PointerLeave returns the hover state to neutral.
func (m *Marquee) PointerLeave() {
	m.setHover(HoverNeutral)
}

func (m *Marquee) setHover(zone HoverZone) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live() {
		return
	}
	m.state = WithHover(m.state, m.cfg, zone, m.scheduler.Now())
}

// ObserveVisibility feeds the visibility gate. Going hidden cancels the
// pending frame; coming back re-epochs from the captured offset and
// requests a frame.
func (m *Marquee) ObserveVisibility(bounds, viewport Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	changed, visible := m.gate.Observe(bounds, viewport)
	if !changed || !m.mounted {
		return
	}
	m.state = WithVisibility(m.state, m.cfg, visible, m.scheduler.Now())
	if visible {
		m.requestFrameLocked()
	} else {
		m.cancelFrameLocked()
	}
}

// Offsets returns the lane offsets captured at the last frame.
func (m *Marquee) Offsets() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LaneOffsets()
}

// Layout returns the current lane model.
func (m *Marquee) Layout() Layout {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Layout
}

// State returns a copy of the engine state.
func (m *Marquee) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Running reports whether a frame is pending.
func (m *Marquee) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame != 0
}

// AddListener adds a callback that receives the lane offsets after every
// frame. Returns an unsubscribe function.
func (m *Marquee) AddListener(fn func(offsets []float64)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextListenerID
	m.nextListenerID++
	if m.listeners != nil {
		m.listeners[id] = fn
	}
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// Dispose cancels the pending frame, disconnects the visibility gate and
// drops all listeners. It is safe to call more than once.
func (m *Marquee) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	m.cancelFrameLocked()
	m.gate.Disconnect()
	m.listeners = nil
	m.disposed = true
	m.mounted = false
}

func (m *Marquee) live() bool {
	return m.mounted && !m.disposed
}

func (m *Marquee) requestFrameLocked() {
	if m.frame != 0 || !m.state.Visible {
		return
	}
	m.frame = m.scheduler.RequestFrame(m.onFrame)
}

func (m *Marquee) cancelFrameLocked() {
	m.scheduler.CancelFrame(m.frame)
	m.frame = 0
}

func (m *Marquee) onFrame(now time.Time) {
	defer errors.Recover("marquee.frame")

	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		errors.Report(errors.New("marquee.frame", errors.KindLifecycle, "frame callback fired after dispose"))
		return
	}
	m.frame = 0
	if !m.state.Visible {
		m.mu.Unlock()
		return
	}
	m.state = Step(m.state, m.cfg, now)
	offsets := m.state.LaneOffsets()
	m.requestFrameLocked()
	listeners := make([]func([]float64), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(append([]float64(nil), offsets...))
	}
}
