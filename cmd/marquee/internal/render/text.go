package render

import (
	"math"
	"strings"

	"github.com/go-drift/marquee/pkg/marquee"
)

// TextCell renders an item as a fixed-width terminal cell.
func TextCell(it marquee.Item, cols int) string {
	if cols <= 0 {
		return ""
	}
	label := "*"
	if it.ShowLabel {
		label = it.DisplayKey
	}
	r := []rune(" " + label + " ")
	if len(r) > cols {
		r = append(r[:cols-1], '|')
	} else {
		r = append(r, []rune(strings.Repeat(" ", cols-len(r)))...)
		r[cols-1] = '|'
	}
	return string(r)
}

// TextRow returns the cols columns of lane i visible at offset, with every
// item occupying cellCols columns. The strip wraps, so the row is always
// full when the lane has items.
func TextRow(l marquee.Layout, lane int, offset float64, cols, cellCols int) string {
	strip := l.Strip(lane)
	if len(strip) == 0 || cols <= 0 || cellCols <= 0 {
		return strings.Repeat(" ", max(cols, 0))
	}
	var sb strings.Builder
	for _, it := range strip {
		sb.WriteString(TextCell(it, cellCols))
	}
	runes := []rune(sb.String())
	n := len(runes)
	shift := int(math.Round(offset / 100 * float64(n)))
	shift = ((shift % n) + n) % n

	row := make([]rune, cols)
	for i := range row {
		row[i] = runes[(shift+i)%n]
	}
	return string(row)
}
