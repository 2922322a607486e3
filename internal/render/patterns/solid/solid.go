package solid

import (
	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
)

// Solid fills the whole grid with one color. The "Ramp" preset walks a gray
// level from 0 to 255, one step per frame.
type Solid struct {
	name string
	c    render.Color
	ramp bool
}

func New(name string, c render.Color) *Solid { return &Solid{name: name, c: c} }

// Gray is the y,y,y color.
func Gray(y uint8) render.Color { return render.Color{R: y, G: y, B: y} }

func (s *Solid) Name() string { return s.name }

func (s *Solid) Presets() []string { return []string{"Red", "Green", "Blue", "White", "Black", "Ramp"} }

func (s *Solid) ApplyPreset(name string) {
	s.ramp = false
	switch name {
	case "Red":
		s.c = render.Color{R: 255}
	case "Green":
		s.c = render.Color{G: 255}
	case "Blue":
		s.c = render.Color{B: 255}
	case "White":
		s.c = Gray(255)
	case "Black":
		s.c = render.Color{}
	case "Ramp":
		s.ramp = true
	}
}

// SetColor replaces the fill color and leaves ramp mode.
func (s *Solid) SetColor(c render.Color) {
	s.c = c
	s.ramp = false
}

func (s *Solid) Render(step int, _ layout.Dim) render.Frame {
	c := s.c
	if s.ramp {
		c = Gray(uint8(step % 256))
	}
	return render.Frame{Fill: &c}
}
