package bits

import (
	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
)

// Counter lights pixel x when bit x of the counter is set. The counter
// starts at 1 on step 0. Pixels past bit 63 stay dark.
type Counter struct {
	name string
	c    render.Color
}

func New(name string) *Counter {
	return &Counter{name: name, c: render.Color{R: 10, G: 10, B: 10}}
}

func (b *Counter) Name() string { return b.name }

func (b *Counter) Presets() []string { return []string{"Dim", "Green"} }

func (b *Counter) ApplyPreset(name string) {
	switch name {
	case "Dim":
		b.c = render.Color{R: 10, G: 10, B: 10}
	case "Green":
		b.c = render.Color{G: 255}
	}
}

func (b *Counter) SetColor(c render.Color) { b.c = c }

// Mask returns the bit pattern of v across n pixels, least significant bit
// first.
func Mask(v uint64, n int) render.Mask {
	m := make(render.Mask, n)
	for x := 0; x < n && x < 64; x++ {
		m[x] = v>>uint(x)&1 == 1
	}
	return m
}

func (b *Counter) Render(step int, dim layout.Dim) render.Frame {
	v := uint64(step) + 1
	return render.Frame{Layers: []render.Layer{{Mask: Mask(v, dim.Count()), Color: b.c}}}
}
