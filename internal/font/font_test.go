package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/matrixcast/internal/render"
)

// rowsOf builds the expected mask by hand from the table.
func rowsOf(digits ...int) render.Mask {
	var out render.Mask
	for row := 0; row < Rows; row++ {
		for _, d := range digits {
			for col := 0; col < Cols; col++ {
				out = append(out, Digits[d][row][col] == 1)
			}
		}
	}
	return out
}

func TestMask2(t *testing.T) {
	m := Mask2(7)
	require.Len(t, m, 64)
	assert.Equal(t, rowsOf(0, 7), m)

	// First glyph row is blank, second row of 7 is 1,1,1,0.
	assert.Equal(t, render.MaskOf(0, 0, 0, 0, 0, 0, 0, 0), m[0:8])
	assert.Equal(t, render.MaskOf(0, 1, 0, 0, 1, 1, 1, 0), m[8:16])

	assert.Equal(t, rowsOf(4, 2), Mask2(42))
	assert.Equal(t, rowsOf(9, 9), Mask2(99))
}

func TestMask4(t *testing.T) {
	m := Mask4(1234)
	require.Len(t, m, 128)
	assert.Equal(t, rowsOf(1, 2, 3, 4), m)
	assert.Equal(t, rowsOf(0, 0, 0, 7), Mask4(7))
	assert.Equal(t, rowsOf(9, 0, 0, 9), Mask4(9009))
}

func TestMask8IsConcatenation(t *testing.T) {
	m := Mask8(12345678)
	require.Len(t, m, 256)
	assert.Equal(t, rowsOf(1, 2, 3, 4), m[:128])
	assert.Equal(t, rowsOf(5, 6, 7, 8), m[128:])
}

func TestOutOfRangeDigitsDoNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		assert.Len(t, Mask2(123), 64)
		assert.Len(t, Mask2(-5), 64)
	})
	// Tens digit 12 has no glyph: left half blank, right half is 3.
	m := Mask2(123)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			assert.False(t, m[row*8+col])
			assert.Equal(t, Digits[3][row][col] == 1, m[row*8+Cols+col])
		}
	}
}

func TestRenderDoesNotMutateTable(t *testing.T) {
	before := Digits
	m := Mask4(8888)
	for i := range m {
		m[i] = !m[i]
	}
	assert.Equal(t, before, Digits)
}
