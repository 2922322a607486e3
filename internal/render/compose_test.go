package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/matrixcast/internal/layout"
)

func TestComposeNoLayersIsBlack(t *testing.T) {
	for _, dim := range []layout.Dim{{X: 4, Y: 1}, {X: 2, Y: 2}, {X: 5, Y: 4}} {
		buf := Compose(dim)
		require.Len(t, buf, dim.Count())
		for i, c := range buf {
			assert.Equal(t, Color{}, c, "pixel %d", i)
		}
	}
}

func TestComposeLastWriterWins(t *testing.T) {
	dim := layout.Dim{X: 4, Y: 1}
	a := Layer{Mask: MaskOf(1, 1, 0, 0), Color: Color{R: 255}}
	b := Layer{Mask: MaskOf(0, 1, 1, 0), Color: Color{B: 200}}

	buf := Compose(dim, a, b)
	assert.Equal(t, []Color{{R: 255}, {B: 200}, {B: 200}, {}}, buf)

	buf = Compose(dim, b, a)
	assert.Equal(t, []Color{{R: 255}, {R: 255}, {B: 200}, {}}, buf)
}

func TestComposeShortAndLongMasks(t *testing.T) {
	dim := layout.Dim{X: 4, Y: 1}
	short := Layer{Mask: MaskOf(0, 1), Color: Color{G: 9}}
	long := Layer{Mask: MaskOf(0, 0, 0, 1, 1, 1, 1), Color: Color{R: 1}}

	buf := Compose(dim, short, long)
	assert.Equal(t, []Color{{}, {G: 9}, {}, {R: 1}}, buf)
}

func TestComposeAppliesSerpentine(t *testing.T) {
	dim := layout.Dim{X: 2, Y: 2}
	first := Layer{Mask: MaskOf(1), Color: Color{R: 7}}
	buf := Compose(dim, first)
	// Logical pixel 0 lands at wire position 1.
	assert.Equal(t, []Color{{}, {R: 7}, {}, {}}, buf)
}

func TestMaskAt(t *testing.T) {
	m := MaskOf(1, 0, 1)
	assert.True(t, m.At(0))
	assert.False(t, m.At(1))
	assert.True(t, m.At(2))
	assert.False(t, m.At(3))
	assert.False(t, m.At(-1))
	assert.False(t, Mask(nil).At(0))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, MaskOf(1, 0, 0, 1, 1), Concat(MaskOf(1, 0), MaskOf(0), MaskOf(1, 1)))
}

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string                          { return s.name }
func (s stubRenderer) Presets() []string                     { return nil }
func (s stubRenderer) ApplyPreset(string)                    {}
func (s stubRenderer) Render(step int, dim layout.Dim) Frame { return Frame{} }

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubRenderer{name: "a"})
	reg.Register(stubRenderer{name: "b"})
	reg.Register(nil)

	_, ok := reg.Get("a")
	assert.True(t, ok)
	_, ok = reg.Get("missing")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"a", "b"}, reg.List())
}
