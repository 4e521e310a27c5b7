// Package tui hosts a marquee in a terminal. Each terminal cell stands in
// for an 8x16 pixel box so the engine sees pixel geometry: the terminal
// width picks the breakpoint, mouse motion picks the hover zone, and
// scrolling the page moves the marquee in and out of the viewport.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/marquee/cmd/marquee/internal/render"
	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/marquee"
)

const (
	cellPx = 8
	rowPx  = 16

	// pageTop is the page row the first lane sits on.
	pageTop = 3
	// pageRows is the height of the scrollable page.
	pageRows = 200

	frameInterval = time.Second / 30
	// featureInterval is how long each item stays on the featured line.
	featureInterval = 3 * time.Second
)

// App draws one marquee on a tcell screen.
type App struct {
	screen   tcell.Screen
	m        *marquee.Marquee
	cellCols int
	scroll   int
	zone     marquee.HoverZone

	items    []marquee.Item
	featured *marquee.Cycler
}

// New creates an app drawing on screen. The screen must be initialized.
func New(screen tcell.Screen, items []marquee.Item, cfg marquee.Config, opts ...marquee.Option) (*App, error) {
	m, err := marquee.New(items, cfg, opts...)
	if err != nil {
		return nil, err
	}
	a := &App{screen: screen, m: m, cellCols: 14, items: items}
	a.featured = marquee.NewCycler(len(items), featureInterval, m.Scheduler().Now())
	w, _ := screen.Size()
	m.Mount(float64(w * cellPx))
	a.observe()
	return a, nil
}

// Featured returns the item on the featured line at now, if any.
func (a *App) Featured(now time.Time) (marquee.Item, bool) {
	i := a.featured.Index(now)
	if i < 0 {
		return marquee.Item{}, false
	}
	return a.items[i], true
}

// Marquee returns the hosted marquee.
func (a *App) Marquee() *marquee.Marquee {
	return a.m
}

// Close disposes the marquee.
func (a *App) Close() {
	a.m.Dispose()
}

// Handle applies one terminal event. It returns false when the app should
// exit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		px, py := float64(x*cellPx+cellPx/2), float64(y*rowPx+rowPx/2)
		a.m.PointerMove(px, py, a.bounds())
		if !a.m.State().Visible {
			break
		}
		a.zone = marquee.ZoneAt(px, py, a.bounds())
		// The featured item holds still while the pointer steers the lanes.
		if now := a.m.Scheduler().Now(); a.zone == marquee.HoverNeutral {
			a.featured.Resume(now)
		} else {
			a.featured.Pause(now)
		}
	case *tcell.EventResize:
		a.screen.Sync()
		w, _ := ev.Size()
		a.m.Resize(float64(w * cellPx))
		a.observe()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	_, h := a.screen.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.scrollBy(-1)
	case tcell.KeyDown:
		a.scrollBy(1)
	case tcell.KeyPgUp:
		a.scrollBy(-h)
	case tcell.KeyPgDn:
		a.scrollBy(h)
	case tcell.KeyHome:
		a.scrollBy(-a.scroll)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			a.scrollBy(-1)
		case 'j':
			a.scrollBy(1)
		}
	}
	return true
}

func (a *App) scrollBy(n int) {
	a.scroll = min(max(a.scroll+n, 0), pageRows)
	a.observe()
}

// bounds is the marquee's box in viewport pixels.
func (a *App) bounds() marquee.Rect {
	w, _ := a.screen.Size()
	lanes := max(len(a.m.Layout().Lanes), 1)
	return marquee.Rect{
		X:      0,
		Y:      float64((pageTop - a.scroll) * rowPx),
		Width:  float64(w * cellPx),
		Height: float64(lanes * rowPx),
	}
}

func (a *App) observe() {
	w, h := a.screen.Size()
	a.m.ObserveVisibility(a.bounds(), marquee.Rect{Width: float64(w * cellPx), Height: float64(h * rowPx)})
}

// Tick runs one frame and redraws.
func (a *App) Tick() {
	a.m.Scheduler().Pump()
	a.Draw()
}

// Draw paints the current state without advancing it.
func (a *App) Draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	layout := a.m.Layout()
	offsets := a.m.Offsets()
	st := a.m.State()
	dirs := st.LaneDirections()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	puts(s, 0, 0, "marquee  arrows/j/k scroll  q quit", tcell.StyleDefault.Bold(true))

	for lane := range layout.Lanes {
		y := pageTop - a.scroll + lane
		if y < 0 || y >= h || lane >= len(offsets) {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		if dirs[lane] == marquee.Backward {
			style = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
		}
		puts(s, 0, y, render.TextRow(layout, lane, offsets[lane], w, a.cellCols), style)
	}

	if y := pageTop - a.scroll + len(layout.Lanes) + 1; y >= 0 && y < h-1 {
		if i := a.featured.Index(a.m.Scheduler().Now()); i >= 0 {
			puts(s, 0, y, "featured: "+a.items[i].DisplayKey, tcell.StyleDefault.Bold(true))
		}
	}

	status := fmt.Sprintf("%s  %d lanes x%d  zone %s  %s  %s",
		layout.Breakpoint, len(layout.Lanes), layout.DuplicationFactor,
		a.zone, visibility(st.Visible), formatOffsets(offsets))
	puts(s, 0, h-1, status, dim)
	s.Show()
}

func visibility(v bool) string {
	if v {
		return "running"
	}
	return "paused (off screen)"
}

func formatOffsets(offsets []float64) string {
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = fmt.Sprintf("%5.1f%%", o)
	}
	return strings.Join(parts, " ")
}

func puts(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run opens the terminal and runs until the user quits.
func Run(items []marquee.Item, cfg marquee.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	app, err := New(screen, items, cfg, marquee.WithClock(animation.ClockFunc(time.Now)))
	if err != nil {
		return err
	}
	defer app.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	app.Draw()
	for {
		select {
		case ev := <-events:
			if !app.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			app.Tick()
		}
	}
}
