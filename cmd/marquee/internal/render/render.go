// Package render turns lane offsets into something to look at: cell
// geometry shared by the pixel hosts, a PNG frame, and text rows for
// terminals.
package render

import (
	"hash/fnv"
	"image/color"

	"github.com/go-drift/marquee/pkg/marquee"
)

// Cell is one item of a translated strip, positioned in viewport pixels.
type Cell struct {
	X     float64
	Width float64
	Item  marquee.Item
}

// StripWidth is the width of lane i's duplicated strip.
func StripWidth(l marquee.Layout, lane int, cellWidth float64) float64 {
	if lane < 0 || lane >= len(l.Lanes) {
		return 0
	}
	return float64(len(l.Lanes[lane].Items)*l.DuplicationFactor) * cellWidth
}

// LaneCells returns the cells of lane i that intersect a viewport of width
// pixels when the strip is translated left by offset percent of its width.
func LaneCells(l marquee.Layout, lane int, offset, width, cellWidth float64) []Cell {
	strip := l.Strip(lane)
	if len(strip) == 0 || cellWidth <= 0 {
		return nil
	}
	shift := -offset / 100 * StripWidth(l, lane, cellWidth)
	var cells []Cell
	for j, it := range strip {
		x := shift + float64(j)*cellWidth
		if x+cellWidth <= 0 || x >= width {
			continue
		}
		cells = append(cells, Cell{X: x, Width: cellWidth, Item: it})
	}
	return cells
}

// ItemColor returns a stable color for an item key.
func ItemColor(key string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(key))
	sum := h.Sum32()
	return color.RGBA{
		R: 64 + uint8(sum&0x7f),
		G: 64 + uint8((sum>>8)&0x7f),
		B: 64 + uint8((sum>>16)&0x7f),
		A: 0xff,
	}
}
