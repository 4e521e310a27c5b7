// Package marquee computes the positions of continuously looping marquee
// lanes: horizontal tracks of duplicated content that scroll forever and
// react to hover, resize and visibility changes without a visible jump.
//
// # Model
//
// A [Layout] distributes the item list over a number of [Lane] values and
// fixes a duplication factor: each lane renders that many copies of its
// items back to back, so translating the strip by [Layout.MovementRange]
// percent lines copy N up exactly with copy N+1 and the loop seam is never
// visible.
//
// Position is a pure function of time. An [Epoch] holds a virtual start
// time, a direction and a speed multiplier; [Progress] turns a timestamp
// into a fraction of the current cycle and [Resolve] turns that into an
// offset. Whenever direction, speed or layout change, [Reepoch] back-dates
// a new epoch so the offset observed at that instant is unchanged.
//
// # Components
//
//   - [State] and [Step]: the explicit engine state and its pure transition
//     functions. Everything the engine guarantees can be tested here without
//     a frame loop.
//
//   - [Marquee]: owns a State, requests frames from an
//     [animation.FrameScheduler] only while visible, and feeds hover, resize
//     and visibility events through the State transitions.
//
//   - [VisibilityGate], [ZoneAt] and [BuildLayout]: the geometry that turns
//     host events into control inputs.
//
//   - [Cycler]: the discrete variant of the same idea, used for tiles that
//     auto-advance on a fixed interval.
//
// # Basic Usage
//
//	m, err := marquee.New(items, marquee.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	m.AddListener(func(offsets []float64) {
//	    for i, off := range offsets {
//	        paintLane(i, -off) // translateX(-off%)
//	    }
//	})
//	m.Mount(viewportWidth)
//
//	// Host frame loop
//	m.Scheduler().Pump()
//
//	// On teardown
//	m.Dispose()
package marquee
