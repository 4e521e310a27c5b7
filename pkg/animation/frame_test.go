package animation

import (
	"testing"
	"time"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestFrameScheduler_RunsPendingOnce(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewFrameScheduler(clk)

	calls := 0
	s.RequestFrame(func(time.Time) { calls++ })

	if got := s.Pump(); got != 1 {
		t.Fatalf("Pump() = %d, want 1", got)
	}
	if got := s.Pump(); got != 0 {
		t.Fatalf("second Pump() = %d, want 0", got)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestFrameScheduler_RequestDuringPumpDefersToNextFrame(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewFrameScheduler(clk)

	calls := 0
	var loop FrameCallback
	loop = func(time.Time) {
		calls++
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)

	for i := 0; i < 3; i++ {
		s.Pump()
	}
	if calls != 3 {
		t.Errorf("loop ran %d times over 3 frames, want 3", calls)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", s.Frames())
	}
}

func TestFrameScheduler_SharedTimestamp(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewFrameScheduler(clk)

	var stamps []time.Time
	for i := 0; i < 3; i++ {
		s.RequestFrame(func(now time.Time) {
			stamps = append(stamps, now)
			clk.now = clk.now.Add(time.Millisecond)
		})
	}
	s.Pump()

	if len(stamps) != 3 {
		t.Fatalf("got %d callbacks, want 3", len(stamps))
	}
	for i, ts := range stamps {
		if !ts.Equal(stamps[0]) {
			t.Errorf("callback %d saw %v, want %v", i, ts, stamps[0])
		}
	}
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler(&stepClock{})

	ran := false
	id := s.RequestFrame(func(time.Time) { ran = true })
	s.CancelFrame(id)
	s.CancelFrame(0)
	s.CancelFrame(id)

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after cancel, want 0", s.Pending())
	}
	s.Pump()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameScheduler_CancelWithinFrame(t *testing.T) {
	s := NewFrameScheduler(&stepClock{})

	var second FrameID
	secondRan := false
	s.RequestFrame(func(time.Time) { s.CancelFrame(second) })
	second = s.RequestFrame(func(time.Time) { secondRan = true })

	if got := s.Pump(); got != 1 {
		t.Errorf("Pump() = %d, want 1", got)
	}
	if secondRan {
		t.Error("callback cancelled earlier in the same frame still ran")
	}
}

func TestSetClock(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	prev := SetClock(ClockFunc(func() time.Time { return fixed }))
	defer SetClock(prev)

	if !Now().Equal(fixed) {
		t.Errorf("Now() = %v, want %v", Now(), fixed)
	}
	s := NewFrameScheduler(nil)
	if !s.Now().Equal(fixed) {
		t.Errorf("scheduler without clock should use package clock, got %v", s.Now())
	}
}

func TestFrameScheduler_CancelWithoutPumpDoesNotGrow(t *testing.T) {
	s := NewFrameScheduler(&stepClock{})
	for i := 0; i < 100; i++ {
		s.CancelFrame(s.RequestFrame(func(time.Time) {}))
	}
	if len(s.order) != 0 || s.Pending() != 0 {
		t.Fatalf("after request/cancel cycles: order=%d pending=%d, want 0", len(s.order), s.Pending())
	}

	ran := 0
	keep := s.RequestFrame(func(time.Time) { ran++ })
	s.CancelFrame(s.RequestFrame(func(time.Time) { ran += 10 }))
	if len(s.order) != 1 || s.order[0] != keep {
		t.Errorf("order = %v, want [%d]", s.order, keep)
	}
	s.Pump()
	if ran != 1 {
		t.Errorf("ran = %d, want only the kept callback", ran)
	}
}
