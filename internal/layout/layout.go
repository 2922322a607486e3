package layout

// Dim is the logical grid: X LEDs per row, Y rows. Y == 1 is a linear strip.
type Dim struct{ X, Y int }

// Count is the number of pixels in the grid.
func (d Dim) Count() int {
	return d.X * d.Y
}

// Valid reports whether both axes hold at least one LED.
func (d Dim) Valid() bool {
	return d.X >= 1 && d.Y >= 1
}

// Reverse flips every other row of a row-major pixel buffer in place so it
// matches serpentine strip wiring.
//
// Row pairs are walked in steps of 2*X, but the swap span inside each pair
// is Y/2 entries mirrored around Y-1. The span follows the Y count, not the
// row width, so dimensions must match how the strip is actually wired.
// Offsets past the end of the buffer are skipped.
func Reverse[T any](d Dim, px []T) {
	n := min(d.Count(), len(px))
	if d.X < 1 || d.Y < 2 {
		return
	}
	for rowstart := 0; rowstart < n; rowstart += 2 * d.X {
		for i := 0; i < d.Y/2; i++ {
			a := rowstart + i
			b := rowstart + d.Y - 1 - i
			if a >= n || b >= n {
				continue
			}
			px[a], px[b] = px[b], px[a]
		}
	}
}
