package render

import "github.com/coreman2200/matrixcast/internal/layout"

// Color is one pixel as it goes on the wire.
type Color struct{ R, G, B uint8 }

// Mask selects pixels by logical row-major index. A mask may be shorter
// than the grid; missing entries read as unset.
type Mask []bool

// At reports whether pixel i is set.
func (m Mask) At(i int) bool {
	return i >= 0 && i < len(m) && m[i]
}

// MaskOf converts a 0/1 sequence into a Mask.
func MaskOf(bits ...int) Mask {
	m := make(Mask, len(bits))
	for i, b := range bits {
		m[i] = b != 0
	}
	return m
}

// Concat joins masks end to end.
func Concat(ms ...Mask) Mask {
	n := 0
	for _, m := range ms {
		n += len(m)
	}
	out := make(Mask, 0, n)
	for _, m := range ms {
		out = append(out, m...)
	}
	return out
}

// Layer paints the set pixels of Mask with Color.
type Layer struct {
	Mask  Mask
	Color Color
}

// Frame is what a Renderer produces for one step. A non-nil Fill paints the
// whole grid and skips compositing.
type Frame struct {
	Layers []Layer
	Fill   *Color
}

type Renderer interface {
	Name() string
	Presets() []string
	ApplyPreset(name string)
	Render(step int, dim layout.Dim) Frame
}

type Registry struct{ m map[string]Renderer }

func NewRegistry() *Registry { return &Registry{m: map[string]Renderer{}} }

func (r *Registry) Register(rr Renderer) {
	if rr == nil {
		return
	}
	r.m[rr.Name()] = rr
}

func (r *Registry) Get(name string) (Renderer, bool) { rr, ok := r.m[name]; return rr, ok }
func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	return out
}
