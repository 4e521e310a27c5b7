// Package testing provides deterministic timing and golden-trace helpers
// for marquee tests.
//
// # Quick Start
//
// Drive a marquee from a fake clock and record what it paints:
//
//	func TestMyMarquee(t *testing.T) {
//	    h := marqueetest.NewHarness()
//	    m, _ := marquee.New(items, cfg, marquee.WithScheduler(h.Scheduler))
//	    rec := h.Record(m.AddListener)
//	    m.Mount(1024)
//
//	    h.PumpFrames(4, 15600*time.Millisecond)
//	    rec.Trace().MatchesFile(t, "testdata/wide.trace.json")
//	}
//
// # Golden Traces
//
// Compare recorded lane offsets against a JSON file:
//
//	trace.MatchesFile(t, "testdata/my_marquee.trace.json")
//
// Update golden files with:
//
//	MARQUEE_UPDATE_TRACES=1 go test ./...
//
// # Time Control
//
// The harness clock only moves when told to:
//
//	h.Clock.Advance(100 * time.Millisecond)
//	h.Pump()
package testing
