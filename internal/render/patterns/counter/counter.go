package counter

import (
	"fmt"

	"github.com/coreman2200/matrixcast/internal/font"
	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
)

var palettes = map[string][]render.Color{
	"White":   {{R: 255, G: 255, B: 255}},
	"Red":     {{R: 255}},
	"Dim":     {{R: 10, G: 10, B: 10}},
	"RGB":     {{R: 255}, {G: 255}, {B: 255}},
	"Rainbow": {{R: 255}, {R: 255, G: 128}, {R: 255, G: 255}, {G: 255}, {B: 255}, {R: 128, B: 255}},
}

// Counter shows the step number as a fixed-width decimal counter. Each
// value takes the next color of the palette, wrapping.
type Counter struct {
	name    string
	mask    func(int) render.Mask
	span    int
	palette []render.Color
}

// New returns a counter of 2, 4 or 8 digits.
func New(name string, digits int) (*Counter, error) {
	c := &Counter{name: name, palette: palettes["White"]}
	switch digits {
	case 2:
		c.mask, c.span = font.Mask2, 100
	case 4:
		c.mask, c.span = font.Mask4, 10000
	case 8:
		c.mask, c.span = font.Mask8, 10000000
	default:
		return nil, fmt.Errorf("unsupported digit count: %d", digits)
	}
	return c, nil
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Presets() []string { return []string{"White", "Red", "Dim", "RGB", "Rainbow"} }

func (c *Counter) ApplyPreset(name string) {
	if p, ok := palettes[name]; ok {
		c.palette = p
	}
}

// SetPalette replaces the color cycle. An empty palette is ignored.
func (c *Counter) SetPalette(colors ...render.Color) {
	if len(colors) == 0 {
		return
	}
	c.palette = append([]render.Color(nil), colors...)
}

// Value is the number shown at step.
func (c *Counter) Value(step int) int {
	v := step % c.span
	if v < 0 {
		v += c.span
	}
	return v
}

func (c *Counter) Render(step int, _ layout.Dim) render.Frame {
	v := c.Value(step)
	col := c.palette[v%len(c.palette)]
	return render.Frame{Layers: []render.Layer{{Mask: c.mask(v), Color: col}}}
}
