package render

import "github.com/coreman2200/matrixcast/internal/layout"

// Compose paints layers onto a black grid in order, later layers winning
// where masks overlap, then reorders the result into serpentine wire order.
func Compose(dim layout.Dim, layers ...Layer) []Color {
	n := dim.Count()
	buf := make([]Color, n)
	for _, l := range layers {
		for i := 0; i < n; i++ {
			if l.Mask.At(i) {
				buf[i] = l.Color
			}
		}
	}
	layout.Reverse(dim, buf)
	return buf
}
