package marquee

import (
	"fmt"
	"time"
)

// Epoch parameterizes the position function from one control event to the
// next. Epochs are replaced whole, never mutated in place.
type Epoch struct {
	// Start is the virtual time at which progress was 0.
	Start time.Time
	// Direction is the global motion sign; lanes multiply it by their own
	// base direction.
	Direction Direction
	// Speed multiplies the base cycle rate.
	Speed float64
}

// Period returns the cycle length under e in nanoseconds, or 0 when the
// epoch does not move.
func (e Epoch) Period(cycle time.Duration) float64 {
	if cycle <= 0 || !(e.Speed > 0) || !finite(e.Speed) {
		return 0
	}
	return float64(cycle) / e.Speed
}

func (e Epoch) String() string {
	return fmt.Sprintf("epoch(start=%s dir=%s speed=%g)", e.Start.Format(time.RFC3339Nano), e.Direction, e.Speed)
}

// Snapshot is the last observed reference offset together with the movement
// range it was measured against.
type Snapshot struct {
	Offset float64
	Range  float64
}

// Reepoch builds the epoch that continues from snap at now with the given
// direction, speed and movement range.
//
// The offset is first rescaled to the new range so that progress through
// the loop, not the raw percentage, survives a range change; it is then
// converted to progress under the new direction, and the start time is
// back-dated by that much of the new period. Resolving the returned epoch
// at now reproduces the (rescaled) snapshot offset.
func Reepoch(snap Snapshot, now time.Time, dir Direction, speed float64, movementRange float64, cycle time.Duration) Epoch {
	offset := 0.0
	if snap.Range > 0 && movementRange > 0 {
		offset = wrapRange(snap.Offset, snap.Range) * movementRange / snap.Range
	}
	next := Epoch{Direction: dir.normalize(), Speed: speed}
	progress := ProgressAt(offset, next.Direction, movementRange)
	next.Start = now.Add(-time.Duration(progress * next.Period(cycle)))
	return next
}
