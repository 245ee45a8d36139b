package board

import (
	"fmt"
	"strings"
)

// String renders a human-readable summary of b: its dimensions, White
// cell/edge counts, properness, and every cell's color and direction
// multiset in column-major order.
func (b *Board) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Width   : %d\n", b.w)
	fmt.Fprintf(&sb, "Height  : %d\n", b.h)
	fmt.Fprintf(&sb, "# White Cells : %d\n", b.numWhiteCells)
	fmt.Fprintf(&sb, "# White Edges : %d\n", b.numWhiteEdges)
	fmt.Fprintf(&sb, "Proper ? : %s\n", yesNo(b.IsProper()))

	for x := 1; x <= b.w; x++ {
		for y := 1; y <= b.h; y++ {
			sb.WriteString(b.cellString(x, y))
		}
	}

	return sb.String()
}

func (b *Board) cellString(x, y int) string {
	var dstr strings.Builder
	for i, d := range b.DirectionsXY(x, y) {
		if i > 0 {
			dstr.WriteString("&")
		}
		dstr.WriteString(d.String())
	}

	return fmt.Sprintf("(%d,%d) = [%s:%s]\n", x, y, b.ColorXY(x, y).String(), dstr.String())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}
