package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/marquee"
)

// sessionLaneHeight is the pixel height of one lane in a headless session.
const sessionLaneHeight = 48

// eventKind is a scripted control event.
type eventKind int

const (
	eventHover eventKind = iota
	eventResize
	eventHide
	eventShow
)

// event is one scripted control event, applied at an offset from the start
// of the session.
type event struct {
	at    time.Duration
	kind  eventKind
	zone  marquee.HoverZone
	width float64
}

func (e event) String() string {
	switch e.kind {
	case eventHover:
		return "hover " + e.zone.String()
	case eventResize:
		return fmt.Sprintf("resize %gpx", e.width)
	case eventHide:
		return "hide"
	default:
		return "show"
	}
}

// session runs a marquee against a manual clock with no host attached.
type session struct {
	m     *marquee.Marquee
	start time.Time
	now   time.Time
	width float64
	// hidden moves the marquee below the viewport.
	hidden bool
}

func newSession(items []marquee.Item, cfg marquee.Config, width float64) (*session, error) {
	s := &session{width: width}
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = s.start
	m, err := marquee.New(items, cfg, marquee.WithClock(animation.ClockFunc(func() time.Time { return s.now })))
	if err != nil {
		return nil, err
	}
	s.m = m
	m.Mount(width)
	return s, nil
}

func (s *session) close() {
	s.m.Dispose()
}

func (s *session) elapsed() time.Duration {
	return s.now.Sub(s.start)
}

func (s *session) viewport() marquee.Rect {
	return marquee.Rect{Width: s.width, Height: 800}
}

func (s *session) bounds() marquee.Rect {
	lanes := max(len(s.m.Layout().Lanes), 1)
	r := marquee.Rect{Y: 200, Width: s.width, Height: float64(lanes * sessionLaneHeight)}
	if s.hidden {
		r.Y = 10000
	}
	return r
}

// apply moves the clock to the event time and applies it.
func (s *session) apply(e event) {
	s.now = s.start.Add(e.at)
	switch e.kind {
	case eventHover:
		b := s.bounds()
		y := b.Y + b.Height/2
		switch e.zone {
		case marquee.HoverLeading:
			s.m.PointerMove(b.X+b.Width/6, y, b)
		case marquee.HoverTrailing:
			s.m.PointerMove(b.X+5*b.Width/6, y, b)
		default:
			s.m.PointerLeave()
		}
	case eventResize:
		s.width = e.width
		s.m.Resize(e.width)
		s.m.ObserveVisibility(s.bounds(), s.viewport())
	case eventHide, eventShow:
		s.hidden = e.kind == eventHide
		s.m.ObserveVisibility(s.bounds(), s.viewport())
	}
}

// frame moves the clock to at and runs one frame.
func (s *session) frame(at time.Duration) {
	s.now = s.start.Add(at)
	s.m.Scheduler().Pump()
}

// run plays frames at each multiple of interval, applying every event due
// at or before a frame first. visit is called after each frame.
func (s *session) run(frames int, interval time.Duration, events []event, visit func(i int, applied []event)) {
	events = sortEvents(events)
	next := 0
	for i := 0; i < frames; i++ {
		at := time.Duration(i) * interval
		var applied []event
		for next < len(events) && events[next].at <= at {
			s.apply(events[next])
			applied = append(applied, events[next])
			next++
		}
		s.frame(at)
		if visit != nil {
			visit(i, applied)
		}
	}
}

// sortEvents returns a copy of events ordered by time. Events at the same
// time keep their command line order.
func sortEvents(events []event) []event {
	sorted := append([]event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].at < sorted[j].at })
	return sorted
}

// parseZone parses a hover zone name.
func parseZone(s string) (marquee.HoverZone, error) {
	switch strings.ToLower(s) {
	case "leading", "left":
		return marquee.HoverLeading, nil
	case "trailing", "right":
		return marquee.HoverTrailing, nil
	case "neutral", "none", "leave":
		return marquee.HoverNeutral, nil
	default:
		return 0, fmt.Errorf("unknown hover zone %q (use leading, trailing or neutral)", s)
	}
}

// parseAt splits "value@duration". A missing "@duration" means time zero.
func parseAt(s string) (string, time.Duration, error) {
	value, at, found := strings.Cut(s, "@")
	if !found {
		return value, 0, nil
	}
	d, err := time.ParseDuration(at)
	if err != nil {
		return "", 0, fmt.Errorf("invalid time %q: %w", at, err)
	}
	if d < 0 {
		return "", 0, fmt.Errorf("invalid time %q: must not be negative", at)
	}
	return value, d, nil
}

func parseHoverEvent(s string) (event, error) {
	name, at, err := parseAt(s)
	if err != nil {
		return event{}, err
	}
	zone, err := parseZone(name)
	if err != nil {
		return event{}, err
	}
	return event{at: at, kind: eventHover, zone: zone}, nil
}

func parseResizeEvent(s string) (event, error) {
	w, at, err := parseAt(s)
	if err != nil {
		return event{}, err
	}
	width, err := strconv.ParseFloat(strings.TrimSuffix(w, "px"), 64)
	if err != nil || width <= 0 {
		return event{}, fmt.Errorf("invalid width %q", w)
	}
	return event{at: at, kind: eventResize, width: width}, nil
}

func parseTimeEvent(kind eventKind, s string) (event, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return event{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if d < 0 {
		return event{}, fmt.Errorf("invalid time %q: must not be negative", s)
	}
	return event{at: d, kind: kind}, nil
}
