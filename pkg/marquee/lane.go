package marquee

import "fmt"

// Item is one display unit of a lane. Items are immutable values.
type Item struct {
	// DisplayKey identifies the item; it is also its label text.
	DisplayKey string
	// AssetRef points at the item's visual (an image path or URL).
	AssetRef string
	// ShowLabel reports whether the label is painted next to the asset.
	ShowLabel bool
}

// Direction is the sign of a lane's motion.
type Direction int8

const (
	// Forward moves content so the offset grows over a cycle.
	Forward Direction = 1
	// Backward moves content so the offset shrinks over a cycle.
	Backward Direction = -1
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// Times combines two directions the way signs multiply.
func (d Direction) Times(o Direction) Direction {
	if d.normalize() == o.normalize() {
		return Forward
	}
	return Backward
}

// normalize maps the zero value to Forward.
func (d Direction) normalize() Direction {
	if d == Backward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Lane is one horizontal track.
type Lane struct {
	// Items is the lane's content in left-to-right order, before duplication.
	Items []Item
	// BaseDirection is the lane's direction with no hover override.
	BaseDirection Direction
}

// Layout is the full lane model for one breakpoint. It is rebuilt, never
// patched, when the breakpoint changes.
type Layout struct {
	Breakpoint Breakpoint
	Lanes      []Lane
	// DuplicationFactor is how many copies of each lane's items are
	// rendered back to back. It is at least 2.
	DuplicationFactor int
}

// MovementRange is the translation, in percent of the strip width, that
// lines copy N up with copy N+1.
func (l Layout) MovementRange() float64 {
	if l.DuplicationFactor <= 0 {
		return 0
	}
	return 100 / float64(l.DuplicationFactor)
}

// Strip returns lane i's items repeated DuplicationFactor times, the
// sequence a rendering layer paints. It returns nil for an unknown lane.
func (l Layout) Strip(i int) []Item {
	if i < 0 || i >= len(l.Lanes) {
		return nil
	}
	items := l.Lanes[i].Items
	strip := make([]Item, 0, len(items)*l.DuplicationFactor)
	for n := 0; n < l.DuplicationFactor; n++ {
		strip = append(strip, items...)
	}
	return strip
}

// Empty reports whether the layout has no lanes to animate.
func (l Layout) Empty() bool {
	return len(l.Lanes) == 0
}
