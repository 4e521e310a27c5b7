package marquee

import "fmt"

// HoverZone is the pointer state of a marquee. Only one zone can be active
// at a time.
type HoverZone int

const (
	// HoverNeutral means the pointer is outside both edge zones.
	HoverNeutral HoverZone = iota
	// HoverLeading means the pointer is over the leading third: lanes reverse
	// and run fast.
	HoverLeading
	// HoverTrailing means the pointer is over the trailing third: lanes keep
	// their direction and run fast.
	HoverTrailing
)

func (z HoverZone) String() string {
	switch z {
	case HoverNeutral:
		return "neutral"
	case HoverLeading:
		return "leading"
	case HoverTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("HoverZone(%d)", int(z))
	}
}

// Motion returns the global direction and speed multiplier for the zone.
func (z HoverZone) Motion(cfg Config) (Direction, float64) {
	switch z {
	case HoverLeading:
		return Backward, cfg.FastSpeed
	case HoverTrailing:
		return Forward, cfg.FastSpeed
	default:
		return Forward, 1
	}
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Area returns the rectangle's area, 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// ZoneAt classifies a pointer position inside bounds: the left third is the
// leading zone, the right third the trailing zone, and the middle third and
// everything outside bounds is neutral.
func ZoneAt(x, y float64, bounds Rect) HoverZone {
	if bounds.Area() == 0 || !bounds.Contains(x, y) {
		return HoverNeutral
	}
	rel := (x - bounds.X) / bounds.Width
	switch {
	case rel < 1.0/3:
		return HoverLeading
	case rel >= 2.0/3:
		return HoverTrailing
	default:
		return HoverNeutral
	}
}
