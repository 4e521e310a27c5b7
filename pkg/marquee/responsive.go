package marquee

import "fmt"

// Breakpoint classifies the viewport width.
type Breakpoint int

const (
	// Compact is used below Config.CompactBreakpointPx.
	Compact Breakpoint = iota
	// Wide is used at or above Config.CompactBreakpointPx.
	Wide
)

func (b Breakpoint) String() string {
	switch b {
	case Compact:
		return "compact"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
}

// LaneCount is the number of lanes the breakpoint distributes items over.
func (b Breakpoint) LaneCount() int {
	if b == Wide {
		return 2
	}
	return 3
}

// DuplicationFactor is the number of copies per lane. Wide viewports show
// more of each strip at once, so two copies would expose the seam.
func (b Breakpoint) DuplicationFactor() int {
	if b == Wide {
		return 3
	}
	return 2
}

// Classify maps a viewport width in pixels to a breakpoint.
func Classify(widthPx float64, cfg Config) Breakpoint {
	if widthPx < cfg.CompactBreakpointPx {
		return Compact
	}
	return Wide
}

// BuildLayout distributes items over the lanes of bp.
//
// Items are split into contiguous runs of near-equal length, preserving
// their order; fewer items than lanes yields one lane per item and no items
// yields no lanes. When prev is given, lane i keeps prev's lane i base
// direction so nothing on screen changes its direction of travel; lanes
// without a predecessor alternate from the lane before them.
func BuildLayout(items []Item, bp Breakpoint, prev *Layout) Layout {
	layout := Layout{
		Breakpoint:        bp,
		DuplicationFactor: bp.DuplicationFactor(),
	}
	n := len(items)
	if n == 0 {
		return layout
	}
	count := min(bp.LaneCount(), n)

	layout.Lanes = make([]Lane, count)
	for i := range layout.Lanes {
		lo, hi := i*n/count, (i+1)*n/count
		lane := Lane{Items: append([]Item(nil), items[lo:hi]...)}
		switch {
		case prev != nil && i < len(prev.Lanes):
			lane.BaseDirection = prev.Lanes[i].BaseDirection.normalize()
		case i == 0:
			lane.BaseDirection = Forward
		default:
			lane.BaseDirection = layout.Lanes[i-1].BaseDirection.Reverse()
		}
		layout.Lanes[i] = lane
	}
	return layout
}
