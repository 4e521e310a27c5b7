package view

import "github.com/go-drift/marquee/pkg/marquee"

const (
	laneHeight = 56
	cellWidth  = 140
	cellGap    = 10

	// pageTop is where the marquee sits on the scrollable page.
	pageTop = 96
	// pageHeight bounds how far the page scrolls.
	pageHeight = 2400
	wheelStep  = 40
)

// input is one tick's worth of host input.
type input struct {
	cursorX, cursorY int
	wheelY           float64
	focused          bool
	quit             bool
}

// scene tracks the page the marquee is placed on and forwards host input to
// it.
type scene struct {
	m       *marquee.Marquee
	width   int
	height  int
	scroll  float64
	mounted bool
}

func (s *scene) bounds() marquee.Rect {
	lanes := max(len(s.m.Layout().Lanes), 1)
	return marquee.Rect{
		Y:      pageTop - s.scroll,
		Width:  float64(s.width),
		Height: float64(lanes * laneHeight),
	}
}

func (s *scene) viewport() marquee.Rect {
	return marquee.Rect{Width: float64(s.width), Height: float64(s.height)}
}

// resize records a new window size and mounts the marquee on the first
// call.
func (s *scene) resize(w, h int) {
	s.width, s.height = w, h
	if !s.mounted {
		s.m.Mount(float64(w))
		s.mounted = true
		return
	}
	s.m.Resize(float64(w))
}

// apply feeds one tick of input to the marquee. It does not run a frame.
func (s *scene) apply(in input) {
	if in.wheelY != 0 {
		s.scroll = min(max(s.scroll-in.wheelY*wheelStep, 0), pageHeight)
	}
	s.m.ObserveVisibility(s.bounds(), s.viewport())

	x, y := float64(in.cursorX), float64(in.cursorY)
	if !in.focused || !s.viewport().Contains(x, y) {
		s.m.PointerLeave()
		return
	}
	s.m.PointerMove(x, y, s.bounds())
}
