// Package sweep has wiring checks: a single pixel walking the logical grid
// and a cycle through the three color channels.
package sweep

import (
	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
)

type Kind string

const (
	IndexSweep Kind = "IndexSweep"
	RGBTest    Kind = "RGB"
)

type Sweep struct {
	name string
	kind Kind
	c    render.Color
}

func New(name string) *Sweep {
	return &Sweep{name: name, kind: IndexSweep, c: render.Color{R: 255, G: 255, B: 255}}
}

func (s *Sweep) Name() string { return s.name }

func (s *Sweep) Presets() []string { return []string{string(IndexSweep), string(RGBTest)} }

func (s *Sweep) ApplyPreset(name string) {
	switch Kind(name) {
	case IndexSweep, RGBTest:
		s.kind = Kind(name)
	}
}

func (s *Sweep) SetColor(c render.Color) { s.c = c }

func (s *Sweep) Render(step int, dim layout.Dim) render.Frame {
	switch s.kind {
	case RGBTest:
		var c render.Color
		switch wrap(step, 3) {
		case 0:
			c.R = 255
		case 1:
			c.G = 255
		case 2:
			c.B = 255
		}
		return render.Frame{Fill: &c}
	default:
		n := dim.Count()
		if n == 0 {
			return render.Frame{}
		}
		m := make(render.Mask, n)
		m[wrap(step, n)] = true
		return render.Frame{Layers: []render.Layer{{Mask: m, Color: s.c}}}
	}
}

// wrap maps step into [0, n) for any step, negatives included.
func wrap(step, n int) int {
	return ((step % n) + n) % n
}
