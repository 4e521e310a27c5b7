package marquee

import "testing"

func TestVisibilityGate(t *testing.T) {
	cfg := DefaultConfig()
	viewport := Rect{X: 0, Y: 0, Width: 1024, Height: 768}
	tests := []struct {
		name   string
		bounds Rect
		want   bool
	}{
		{"fully inside", Rect{X: 0, Y: 200, Width: 1024, Height: 100}, true},
		{"far below", Rect{X: 0, Y: 2000, Width: 1024, Height: 100}, false},
		{"within preroll below", Rect{X: 0, Y: 788, Width: 1024, Height: 100}, true},
		{"preroll overlap under threshold", Rect{X: 0, Y: 813, Width: 1024, Height: 100}, false},
		{"just past preroll", Rect{X: 0, Y: 818, Width: 1024, Height: 100}, false},
		{"zero area", Rect{X: 0, Y: 200, Width: 0, Height: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewVisibilityGate(cfg)
			_, got := g.Observe(tt.bounds, viewport)
			if got != tt.want {
				t.Errorf("Observe visible = %v (ratio %v), want %v", got, g.Ratio(tt.bounds, viewport), tt.want)
			}
		})
	}
}

func TestVisibilityGate_ReportsTransitions(t *testing.T) {
	g := NewVisibilityGate(DefaultConfig())
	viewport := Rect{Width: 800, Height: 600}
	on := Rect{Y: 100, Width: 800, Height: 100}
	off := Rect{Y: 5000, Width: 800, Height: 100}

	if changed, _ := g.Observe(on, viewport); changed {
		t.Error("gate starts visible; observing visible bounds should not change it")
	}
	if changed, visible := g.Observe(off, viewport); !changed || visible {
		t.Errorf("Observe(off) = (%v, %v), want (true, false)", changed, visible)
	}
	if changed, _ := g.Observe(off, viewport); changed {
		t.Error("repeated hidden observation should not report a change")
	}
	if changed, visible := g.Observe(on, viewport); !changed || !visible {
		t.Errorf("Observe(on) = (%v, %v), want (true, true)", changed, visible)
	}

	g.Disconnect()
	if changed, visible := g.Observe(on, viewport); changed || visible {
		t.Errorf("disconnected gate Observe = (%v, %v), want (false, false)", changed, visible)
	}
	if g.Connected() {
		t.Error("Connected() should be false after Disconnect")
	}
}
