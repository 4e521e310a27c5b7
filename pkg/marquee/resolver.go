package marquee

import (
	"math"
	"time"
)

// Progress returns the fraction of the current cycle reached at now under
// epoch e, in [0, 1). Timestamps before the epoch's start wrap backwards
// into the previous cycle.
func Progress(now time.Time, e Epoch, cycle time.Duration) float64 {
	period := e.Period(cycle)
	if period <= 0 {
		return 0
	}
	return wrapUnit(float64(now.Sub(e.Start)) / period)
}

// Resolve maps progress to an offset in [0, movementRange). Forward lanes
// move from 0 towards movementRange; Backward lanes move the other way.
func Resolve(progress float64, dir Direction, movementRange float64) float64 {
	if !(movementRange > 0) || math.IsInf(movementRange, 0) {
		return 0
	}
	p := wrapUnit(progress)
	var offset float64
	if dir == Backward {
		offset = movementRange - p*movementRange
	} else {
		offset = p * movementRange
	}
	return wrapRange(offset, movementRange)
}

// ProgressAt is the inverse of Resolve: the progress at which a lane moving
// in dir sits at offset.
func ProgressAt(offset float64, dir Direction, movementRange float64) float64 {
	if !(movementRange > 0) || math.IsInf(movementRange, 0) {
		return 0
	}
	ratio := wrapRange(offset, movementRange) / movementRange
	if dir == Backward {
		return wrapUnit(1 - ratio)
	}
	return wrapUnit(ratio)
}

// Offset resolves the offset of a lane moving in e's direction at now.
func Offset(now time.Time, e Epoch, cycle time.Duration, movementRange float64) float64 {
	return Resolve(Progress(now, e, cycle), e.Direction, movementRange)
}

// wrapUnit folds v into [0, 1). Non-finite input maps to 0.
func wrapUnit(v float64) float64 {
	return wrapRange(v, 1)
}

// wrapRange folds v into [0, r). Values are wrapped, never clamped: a
// clamped offset would stop the lane.
func wrapRange(v, r float64) float64 {
	if !(r > 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Mod(v, r)
	if v < 0 {
		v += r
	}
	if v >= r {
		v = 0
	}
	return v
}
