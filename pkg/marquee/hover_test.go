package marquee

import "testing"

func TestZoneAt(t *testing.T) {
	bounds := Rect{X: 100, Y: 0, Width: 300, Height: 80}
	tests := []struct {
		name string
		x, y float64
		want HoverZone
	}{
		{"left edge", 100, 10, HoverLeading},
		{"leading third", 199, 10, HoverLeading},
		{"middle", 250, 10, HoverNeutral},
		{"trailing boundary", 300, 10, HoverTrailing},
		{"trailing third", 399, 79, HoverTrailing},
		{"right of bounds", 400, 10, HoverNeutral},
		{"above bounds", 150, -1, HoverNeutral},
		{"left of bounds", 50, 10, HoverNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZoneAt(tt.x, tt.y, bounds); got != tt.want {
				t.Errorf("ZoneAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if got := ZoneAt(0, 0, Rect{}); got != HoverNeutral {
		t.Errorf("ZoneAt on empty bounds = %v, want neutral", got)
	}
}

func TestHoverZone_Motion(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		zone      HoverZone
		wantDir   Direction
		wantSpeed float64
	}{
		{HoverNeutral, Forward, 1},
		{HoverLeading, Backward, cfg.FastSpeed},
		{HoverTrailing, Forward, cfg.FastSpeed},
	}
	for _, tt := range tests {
		dir, speed := tt.zone.Motion(cfg)
		if dir != tt.wantDir || speed != tt.wantSpeed {
			t.Errorf("%v.Motion() = (%v, %v), want (%v, %v)", tt.zone, dir, speed, tt.wantDir, tt.wantSpeed)
		}
	}
}

func TestDirection(t *testing.T) {
	if Forward.Reverse() != Backward || Backward.Reverse() != Forward {
		t.Error("Reverse should swap directions")
	}
	if Backward.Times(Backward) != Forward || Forward.Times(Backward) != Backward {
		t.Error("Times should multiply signs")
	}
	if Direction(0).Times(Forward) != Forward {
		t.Error("zero direction should act as forward")
	}
}
