// Package font holds the 8x4 decimal digit glyphs and renders fixed-width
// counters as pixel masks in logical row-major order.
package font

import "github.com/coreman2200/matrixcast/internal/render"

const (
	Rows = 8
	Cols = 4
)

type Glyph [Rows][Cols]uint8

// Digits is indexed by digit value. Rows 6 and 7 are blank spacing.
var Digits = [10]Glyph{
	{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{1, 0, 1, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

var blank Glyph

// glyph returns the table entry for d, or a blank glyph when d is not a
// single decimal digit.
func glyph(d int) *Glyph {
	if d < 0 || d > 9 {
		return &blank
	}
	return &Digits[d]
}

// Render lays the given digits side by side, Cols pixels each, and returns
// the Rows x (Cols*len(digits)) mask row by row.
func Render(digits ...int) render.Mask {
	gs := make([]*Glyph, len(digits))
	for i, d := range digits {
		gs[i] = glyph(d)
	}
	out := make(render.Mask, 0, Rows*Cols*len(gs))
	for row := 0; row < Rows; row++ {
		for _, g := range gs {
			for _, v := range g[row] {
				out = append(out, v != 0)
			}
		}
	}
	return out
}

// Mask2 renders d as two digits (8x8). d is expected in [0, 99].
func Mask2(d int) render.Mask {
	return Render(d/10, d%10)
}

// Mask4 renders d as four digits (8x16), thousands first.
func Mask4(d int) render.Mask {
	p3 := d / 1000
	d %= 1000
	p2 := d / 100
	d %= 100
	p1 := d / 10
	p0 := d % 10
	return Render(p3, p2, p1, p0)
}

// Mask8 appends the four low digits of d after the four high ones. The two
// halves are concatenated, not interleaved per row.
func Mask8(d int) render.Mask {
	return render.Concat(Mask4(d/10000), Mask4(d%10000))
}
