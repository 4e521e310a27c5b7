package marquee

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			DisplayKey: fmt.Sprintf("item-%d", i),
			AssetRef:   fmt.Sprintf("/logos/item-%d.svg", i),
			ShowLabel:  i%2 == 0,
		}
	}
	return items
}

func laneSizes(l Layout) []int {
	sizes := make([]int, len(l.Lanes))
	for i, lane := range l.Lanes {
		sizes[i] = len(lane.Items)
	}
	return sizes
}

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		width float64
		want  Breakpoint
	}{
		{0, Compact},
		{375, Compact},
		{639.5, Compact},
		{640, Wide},
		{1920, Wide},
	}
	for _, tt := range tests {
		if got := Classify(tt.width, cfg); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestBuildLayout(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		bp        Breakpoint
		wantSizes []int
		wantDirs  []Direction
		wantDup   int
	}{
		{"empty compact", 0, Compact, []int{}, []Direction{}, 2},
		{"empty wide", 0, Wide, []int{}, []Direction{}, 3},
		{"compact seven", 7, Compact, []int{2, 2, 3}, []Direction{Forward, Backward, Forward}, 2},
		{"wide seven", 7, Wide, []int{3, 4}, []Direction{Forward, Backward}, 3},
		{"compact fewer items than lanes", 2, Compact, []int{1, 1}, []Direction{Forward, Backward}, 2},
		{"wide single", 1, Wide, []int{1}, []Direction{Forward}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := BuildLayout(sampleItems(tt.items), tt.bp, nil)
			if diff := cmp.Diff(tt.wantSizes, laneSizes(l)); diff != "" {
				t.Errorf("lane sizes (-want +got):\n%s", diff)
			}
			dirs := make([]Direction, len(l.Lanes))
			for i, lane := range l.Lanes {
				dirs[i] = lane.BaseDirection
			}
			if diff := cmp.Diff(tt.wantDirs, dirs); diff != "" {
				t.Errorf("directions (-want +got):\n%s", diff)
			}
			if l.DuplicationFactor != tt.wantDup {
				t.Errorf("DuplicationFactor = %d, want %d", l.DuplicationFactor, tt.wantDup)
			}
			if l.Breakpoint != tt.bp {
				t.Errorf("Breakpoint = %v, want %v", l.Breakpoint, tt.bp)
			}
		})
	}
}

func TestBuildLayout_PreservesOrder(t *testing.T) {
	items := sampleItems(9)
	l := BuildLayout(items, Compact, nil)

	var flat []Item
	for _, lane := range l.Lanes {
		flat = append(flat, lane.Items...)
	}
	if diff := cmp.Diff(items, flat); diff != "" {
		t.Errorf("concatenated lanes differ from input (-want +got):\n%s", diff)
	}
}

func TestBuildLayout_KeepsScreenDirectionAcrossRebuild(t *testing.T) {
	items := sampleItems(6)
	compact := BuildLayout(items, Compact, nil)
	// Flip the first lane as a previous rebuild might have.
	compact.Lanes[0].BaseDirection = Backward
	compact.Lanes[1].BaseDirection = Forward

	wide := BuildLayout(items, Wide, &compact)
	if wide.Lanes[0].BaseDirection != Backward || wide.Lanes[1].BaseDirection != Forward {
		t.Errorf("wide directions = %v, %v; want backward, forward",
			wide.Lanes[0].BaseDirection, wide.Lanes[1].BaseDirection)
	}

	back := BuildLayout(items, Compact, &wide)
	want := []Direction{Backward, Forward, Backward}
	for i, lane := range back.Lanes {
		if lane.BaseDirection != want[i] {
			t.Errorf("lane %d direction = %v, want %v", i, lane.BaseDirection, want[i])
		}
	}
}

func TestLayout_MovementRangeAndStrip(t *testing.T) {
	compact := BuildLayout(sampleItems(6), Compact, nil)
	if got := compact.MovementRange(); got != 50 {
		t.Errorf("compact MovementRange = %v, want 50", got)
	}
	wide := BuildLayout(sampleItems(6), Wide, nil)
	if got := wide.MovementRange(); got != 100.0/3 {
		t.Errorf("wide MovementRange = %v, want 33.33", got)
	}

	strip := wide.Strip(1)
	if len(strip) != 9 {
		t.Fatalf("Strip(1) has %d items, want 9", len(strip))
	}
	if strip[0] != strip[3] || strip[3] != strip[6] {
		t.Error("strip copies should repeat the lane items in order")
	}
	if wide.Strip(5) != nil {
		t.Error("Strip of unknown lane should be nil")
	}
	if (Layout{}).MovementRange() != 0 {
		t.Error("zero layout should have zero movement range")
	}
}
