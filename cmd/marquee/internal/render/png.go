package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/marquee"
)

// FrameOptions controls PNG frame geometry.
type FrameOptions struct {
	Width      int
	LaneHeight int
	CellWidth  int
	Gap        int
	Background color.Color
	Foreground color.Color
}

// DefaultFrameOptions returns options for a frame of the given width.
func DefaultFrameOptions(width int) FrameOptions {
	return FrameOptions{
		Width:      width,
		LaneHeight: 48,
		CellWidth:  120,
		Gap:        8,
		Background: color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff},
		Foreground: color.White,
	}
}

// Frame paints every lane of l at the given offsets.
func Frame(l marquee.Layout, offsets []float64, opts FrameOptions) *image.RGBA {
	rows := max(len(l.Lanes), 1)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, rows*opts.LaneHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for lane := range l.Lanes {
		if lane >= len(offsets) {
			break
		}
		top := lane * opts.LaneHeight
		for _, c := range LaneCells(l, lane, offsets[lane], float64(opts.Width), float64(opts.CellWidth)) {
			x0 := int(math.Floor(c.X)) + opts.Gap/2
			x1 := int(math.Floor(c.X+c.Width)) - opts.Gap/2
			box := image.Rect(x0, top+opts.Gap/2, x1, top+opts.LaneHeight-opts.Gap/2).Intersect(img.Bounds())
			draw.Draw(img, box, image.NewUniform(ItemColor(c.Item.DisplayKey)), image.Point{}, draw.Src)

			if !c.Item.ShowLabel {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(opts.Foreground),
				Face: face,
			}
			label := truncate(c.Item.DisplayKey, face, x1-x0-8)
			adv := d.MeasureString(label).Ceil()
			d.Dot = fixed.P(x0+(x1-x0-adv)/2, top+opts.LaneHeight/2+face.Ascent/2)
			d.DrawString(label)
		}
	}
	return img
}

// truncate shortens s until it fits within px at face.
func truncate(s string, face font.Face, px int) string {
	r := []rune(s)
	for len(r) > 0 && font.MeasureString(face, string(r)).Ceil() > px {
		r = r[:len(r)-1]
	}
	return string(r)
}

// WritePNG encodes img to w. Failures are reported to the error handler
// and returned as a KindRender error.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		rerr := errors.New("render.WritePNG", errors.KindRender, "encode png: %w", err)
		errors.Report(rerr)
		return rerr
	}
	return nil
}
