package marquee

import "time"

// State is everything the engine needs to position a marquee's lanes. It is
// a plain value: every transition below returns a new State and leaves its
// input untouched (Layout's lane slices are shared, never written).
type State struct {
	Layout Layout
	Epoch  Epoch
	Hover  HoverZone
	// Visible reports whether the clock is running.
	Visible bool
	// Offset is the reference offset, that of a Forward lane, captured by
	// the last Step. Lane offsets are derived from it.
	Offset float64
	// At is when Offset was captured.
	At time.Time
	// Generation counts epoch replacements.
	Generation uint64
}

// NewState starts a visible state at offset 0 with no hover.
func NewState(layout Layout, now time.Time) State {
	return State{
		Layout:  layout,
		Epoch:   Epoch{Start: now, Direction: Forward, Speed: 1},
		Hover:   HoverNeutral,
		Visible: true,
		At:      now,
	}
}

// Step advances the captured offset to now. A hidden state, or one with no
// lanes, is returned unchanged: nothing is computed against a suspended
// clock.
func Step(s State, cfg Config, now time.Time) State {
	if !s.Visible || s.Layout.Empty() {
		return s
	}
	s.Offset = Offset(now, s.Epoch, cfg.BaseCycle, s.Layout.MovementRange())
	s.At = now
	return s
}

// LaneOffsets returns one offset per lane, each in [0, MovementRange).
// Lanes whose base direction is Backward mirror the reference offset.
func (s State) LaneOffsets() []float64 {
	if s.Layout.Empty() {
		return nil
	}
	r := s.Layout.MovementRange()
	ref := wrapRange(s.Offset, r)
	offsets := make([]float64, len(s.Layout.Lanes))
	for i, lane := range s.Layout.Lanes {
		if lane.BaseDirection == Backward {
			offsets[i] = wrapRange(r-ref, r)
		} else {
			offsets[i] = ref
		}
	}
	return offsets
}

// LaneDirections returns the direction each lane is travelling in right now,
// its base direction combined with the epoch's.
func (s State) LaneDirections() []Direction {
	dirs := make([]Direction, len(s.Layout.Lanes))
	for i, lane := range s.Layout.Lanes {
		dirs[i] = lane.BaseDirection.Times(s.Epoch.Direction)
	}
	return dirs
}

// reepoch installs the epoch that continues from the captured offset under
// the current hover motion.
func (s State) reepoch(cfg Config, snap Snapshot, now time.Time) State {
	dir, speed := s.Hover.Motion(cfg)
	s.Epoch = Reepoch(snap, now, dir, speed, s.Layout.MovementRange(), cfg.BaseCycle)
	s.Offset = Offset(now, s.Epoch, cfg.BaseCycle, s.Layout.MovementRange())
	s.At = now
	s.Generation++
	return s
}

// WithHover moves the hover state machine to zone. Re-entering the active
// zone is a no-op, and so is every hover change while hidden.
func WithHover(s State, cfg Config, zone HoverZone, now time.Time) State {
	if !s.Visible || zone == s.Hover {
		return s
	}
	s = Step(s, cfg, now)
	snap := Snapshot{Offset: s.Offset, Range: s.Layout.MovementRange()}
	s.Hover = zone
	return s.reepoch(cfg, snap, now)
}

// WithLayout replaces the lane model. Progress through the loop carries over
// to the new movement range; a state without lanes before starts the new
// layout at offset 0.
func WithLayout(s State, cfg Config, layout Layout, now time.Time) State {
	s = Step(s, cfg, now)
	snap := Snapshot{Offset: s.Offset, Range: s.Layout.MovementRange()}
	if s.Layout.Empty() {
		snap = Snapshot{}
	}
	s.Layout = layout
	if !s.Visible {
		// The clock is suspended; rescale the captured offset and leave the
		// epoch for WithVisibility to rebuild.
		s.Offset = Resolve(ProgressAt(snap.Offset, Forward, snap.Range), Forward, layout.MovementRange())
		return s
	}
	return s.reepoch(cfg, snap, now)
}

// WithVisibility suspends or resumes the clock. Suspending captures the
// offset at now; resuming continues from it rather than from the old start
// time, so time spent hidden does not move the lanes.
func WithVisibility(s State, cfg Config, visible bool, now time.Time) State {
	if visible == s.Visible {
		return s
	}
	if !visible {
		s = Step(s, cfg, now)
		s.Visible = false
		return s
	}
	s.Visible = true
	snap := Snapshot{Offset: s.Offset, Range: s.Layout.MovementRange()}
	return s.reepoch(cfg, snap, now)
}
