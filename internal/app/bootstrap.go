package app

import (
	"strconv"

	"github.com/coreman2200/matrixcast/internal/render"
	"github.com/coreman2200/matrixcast/internal/render/patterns/bits"
	"github.com/coreman2200/matrixcast/internal/render/patterns/counter"
	"github.com/coreman2200/matrixcast/internal/render/patterns/solid"
	"github.com/coreman2200/matrixcast/internal/render/patterns/sweep"
)

// RegisterDefaults adds every built-in pattern to reg.
func RegisterDefaults(reg *render.Registry) {
	reg.Register(solid.New("solid", render.Color{R: 255}))
	reg.Register(bits.New("bits"))
	reg.Register(sweep.New("sweep"))
	for _, n := range []int{2, 4, 8} {
		c, err := counter.New("counter"+strconv.Itoa(n), n)
		if err != nil {
			continue
		}
		reg.Register(c)
	}
}

// SetColors overrides the colors of the named renderer where it supports it:
// the whole palette for counters, the first color otherwise.
func SetColors(reg *render.Registry, name string, colors []render.Color) bool {
	if len(colors) == 0 {
		return false
	}
	rr, ok := reg.Get(name)
	if !ok {
		return false
	}
	switch r := rr.(type) {
	case *counter.Counter:
		r.SetPalette(colors...)
	case *solid.Solid:
		r.SetColor(colors[0])
	case *bits.Counter:
		r.SetColor(colors[0])
	case *sweep.Sweep:
		r.SetColor(colors[0])
	default:
		return false
	}
	return true
}
