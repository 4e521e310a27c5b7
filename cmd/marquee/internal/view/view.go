// Package view hosts a marquee in a desktop window using Ebitengine. The
// window width picks the breakpoint, the cursor picks the hover zone, and
// the mouse wheel scrolls the page the marquee is placed on.
package view

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/marquee/cmd/marquee/internal/render"
	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/marquee"
)

var (
	background = color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}
	muted      = color.RGBA{R: 0x8a, G: 0x90, B: 0x9c, A: 0xff}
)

// Game implements ebiten.Game.
type Game struct {
	scene
	face *text.GoTextFace
}

// New creates a game around a new marquee. It is mounted on the first
// Layout call, once the window size is known.
func New(items []marquee.Item, cfg marquee.Config, opts ...marquee.Option) (*Game, error) {
	m, err := marquee.New(items, cfg, opts...)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Game{
		scene: scene{m: m},
		face:  &text.GoTextFace{Source: src, Size: 14},
	}, nil
}

// Close disposes the marquee.
func (g *Game) Close() {
	g.m.Dispose()
}

// Update reads input and runs one frame.
func (g *Game) Update() error {
	if !g.mounted {
		return nil
	}
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	in := input{
		cursorX: x,
		cursorY: y,
		wheelY:  wy,
		focused: ebiten.IsFocused(),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if in.quit {
		return ebiten.Termination
	}
	g.apply(in)
	g.m.Scheduler().Pump()
	return nil
}

// Draw paints the lanes at the offsets of the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	layout := g.m.Layout()
	offsets := g.m.Offsets()
	st := g.m.State()
	top := float64(pageTop) - g.scroll

	for lane := range layout.Lanes {
		if lane >= len(offsets) {
			break
		}
		y := top + float64(lane*laneHeight)
		if y+laneHeight < 0 || y > float64(g.height) {
			continue
		}
		for _, c := range render.LaneCells(layout, lane, offsets[lane], float64(g.width), cellWidth) {
			vector.DrawFilledRect(screen,
				float32(c.X+cellGap/2), float32(y+cellGap/2),
				float32(c.Width-cellGap), float32(laneHeight-cellGap),
				render.ItemColor(c.Item.DisplayKey), false)
			if c.Item.ShowLabel {
				g.label(screen, c.Item.DisplayKey, c.X+c.Width/2, y+laneHeight/2, color.White)
			}
		}
	}

	status := fmt.Sprintf("%s  %d lanes x%d  hover %s  visible %t  (wheel scrolls, q quits)",
		layout.Breakpoint, len(layout.Lanes), layout.DuplicationFactor, st.Hover, st.Visible)
	g.label(screen, status, float64(g.width)/2, 24, muted)
}

// label draws s centered on (cx, cy).
func (g *Game) label(dst *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	w, h := text.Measure(s, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

// Layout implements ebiten.Game. The marquee sees the window size in device
// independent pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height || !g.mounted {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed.
func Run(items []marquee.Item, cfg marquee.Config) error {
	g, err := New(items, cfg, marquee.WithClock(animation.ClockFunc(time.Now)))
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(1024, 360)
	ebiten.SetWindowTitle("marquee")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
