package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/led"
	"github.com/coreman2200/matrixcast/internal/render"
	"github.com/coreman2200/matrixcast/internal/wire"
)

// Conductor asks the active renderer for a frame on every tick and writes
// the encoded frame to the driver. Every frame is independent: a failed send
// is logged and the next tick simply tries again.
type Conductor struct {
	Dim layout.Dim
	Reg *render.Registry
	Drv led.Driver

	active render.Renderer
	step   int

	Sent   uint64
	Failed uint64
}

func NewConductor(dim layout.Dim, reg *render.Registry, drv led.Driver) *Conductor {
	return &Conductor{Dim: dim, Reg: reg, Drv: drv}
}

// SetRenderer makes the named renderer active and restarts its step count.
// If preset != "", ApplyPreset is called first.
func (c *Conductor) SetRenderer(name, preset string) error {
	if c.Reg == nil {
		return errors.New("registry is nil")
	}
	rr, ok := c.Reg.Get(name)
	if !ok {
		return errors.New("renderer not found: " + name)
	}
	if preset != "" {
		rr.ApplyPreset(preset)
	}
	c.active = rr
	c.step = 0
	return nil
}

// Active is the current renderer, nil before SetRenderer.
func (c *Conductor) Active() render.Renderer { return c.active }

// FrameBytes turns a rendered frame into its wire payload. Fills go out
// pre-expanded and skip compositing.
func FrameBytes(dim layout.Dim, f render.Frame) []byte {
	if f.Fill != nil {
		return wire.Uniform(*f.Fill, dim.Count())
	}
	return wire.Encode(render.Compose(dim, f.Layers...))
}

// RenderOnce renders and sends the current step, then advances it.
func (c *Conductor) RenderOnce() error {
	if c.active == nil {
		return errors.New("no active renderer")
	}
	b := FrameBytes(c.Dim, c.active.Render(c.step, c.Dim))
	c.step++
	if c.Drv == nil {
		return nil
	}
	if err := c.Drv.Write(b); err != nil {
		c.Failed++
		return err
	}
	c.Sent++
	return nil
}

// Run sends a frame every interval until ctx is cancelled.
func (c *Conductor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.tick()
	for {
		select {
		case <-ctx.Done():
			log.Info().Uint64("sent", c.Sent).Uint64("failed", c.Failed).Msg("conductor stopped")
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

func (c *Conductor) tick() {
	if err := c.RenderOnce(); err != nil {
		log.Warn().Err(err).Int("step", c.step).Msg("frame dropped")
	}
}
