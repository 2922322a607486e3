package main

import (
	"time"

	"github.com/coreman2200/matrixcast/internal/config"
	"github.com/coreman2200/matrixcast/internal/layout"
)

// settings is the client's effective configuration.
type settings struct {
	Dst      string
	Dim      layout.Dim
	Pattern  string
	Preset   string
	Interval time.Duration
	Colors   []string
}

// merge applies c. The destination and each axis are only taken from c when
// not already given on the command line; the remaining fields override.
func (s *settings) merge(c config.Client) {
	if s.Dst == "" && c.Dst != "" {
		s.Dst = c.Dst
	}
	if s.Dim.X < 1 && c.Dim.X > 0 {
		s.Dim.X = c.Dim.X
	}
	if s.Dim.Y < 1 && c.Dim.Y > 0 {
		s.Dim.Y = c.Dim.Y
	}
	if c.Pattern != "" {
		s.Pattern = c.Pattern
	}
	if c.Preset != "" {
		s.Preset = c.Preset
	}
	if c.IntervalMs > 0 {
		s.Interval = time.Duration(c.IntervalMs) * time.Millisecond
	}
	if len(c.Colors) > 0 {
		s.Colors = c.Colors
	}
}

func (s settings) client() config.Client {
	return config.Client{
		Dst:        s.Dst,
		Dim:        config.Dim{X: s.Dim.X, Y: s.Dim.Y},
		Pattern:    s.Pattern,
		Preset:     s.Preset,
		IntervalMs: int(s.Interval / time.Millisecond),
		Colors:     s.Colors,
	}
}
