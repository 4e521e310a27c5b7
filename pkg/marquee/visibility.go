package marquee

// VisibilityGate decides whether a marquee is on screen, in the manner of an
// intersection observer: the viewport is inflated by a pre-roll margin and
// the marquee counts as visible when at least the threshold fraction of its
// bounds overlaps it.
//
// A gate starts connected and visible. After Disconnect it ignores all
// observations.
type VisibilityGate struct {
	preroll   float64
	threshold float64
	visible   bool
	connected bool
}

// NewVisibilityGate creates a connected gate using cfg's pre-roll and
// threshold.
func NewVisibilityGate(cfg Config) *VisibilityGate {
	return &VisibilityGate{
		preroll:   cfg.VisibilityPrerollPx,
		threshold: cfg.VisibilityThreshold,
		visible:   true,
		connected: true,
	}
}

// Ratio returns the fraction of bounds inside the inflated viewport.
func (g *VisibilityGate) Ratio(bounds, viewport Rect) float64 {
	area := bounds.Area()
	if area == 0 {
		return 0
	}
	return bounds.Intersect(viewport.Inflate(g.preroll)).Area() / area
}

// Observe records a new bounds/viewport pair. It returns whether the visible
// state changed and the state after the observation.
func (g *VisibilityGate) Observe(bounds, viewport Rect) (changed, visible bool) {
	if !g.connected {
		return false, g.visible
	}
	ratio := g.Ratio(bounds, viewport)
	next := ratio > 0 && ratio >= g.threshold
	changed = next != g.visible
	g.visible = next
	return changed, next
}

// Visible reports the last observed state.
func (g *VisibilityGate) Visible() bool {
	return g.visible
}

// Connected reports whether the gate still accepts observations.
func (g *VisibilityGate) Connected() bool {
	return g.connected
}

// Disconnect stops the gate from accepting observations and marks it hidden.
func (g *VisibilityGate) Disconnect() {
	g.connected = false
	g.visible = false
}
