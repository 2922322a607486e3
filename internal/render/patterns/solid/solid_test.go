package solid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
)

func TestSolidFill(t *testing.T) {
	s := New("solid", render.Color{R: 1, G: 2, B: 3})
	f := s.Render(0, layout.Dim{X: 3, Y: 3})
	require.NotNil(t, f.Fill)
	assert.Empty(t, f.Layers)
	assert.Equal(t, render.Color{R: 1, G: 2, B: 3}, *f.Fill)

	s.ApplyPreset("Blue")
	assert.Equal(t, render.Color{B: 255}, *s.Render(0, layout.Dim{X: 1, Y: 1}).Fill)
}

func TestSolidRamp(t *testing.T) {
	s := New("solid", render.Color{})
	s.ApplyPreset("Ramp")
	assert.Equal(t, Gray(10), *s.Render(10, layout.Dim{X: 1, Y: 1}).Fill)
	assert.Equal(t, Gray(4), *s.Render(260, layout.Dim{X: 1, Y: 1}).Fill)

	s.SetColor(render.Color{G: 1})
	assert.Equal(t, render.Color{G: 1}, *s.Render(10, layout.Dim{X: 1, Y: 1}).Fill)
}
