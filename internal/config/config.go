package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/matrixcast/internal/render"
)

type Dim struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type SPI struct {
	Dev    string `yaml:"dev"`     // "" picks the first port
	FreqHz int64  `yaml:"freq_hz"` // strip data rate, e.g. 800000
}

// Client configures the sender side.
type Client struct {
	Dst        string   `yaml:"dst"`
	Dim        Dim      `yaml:"dim"`
	Pattern    string   `yaml:"pattern"`
	Preset     string   `yaml:"preset,omitempty"`
	IntervalMs int      `yaml:"interval_ms"`
	Colors     []string `yaml:"colors,omitempty"` // "#rrggbb" or "r,g,b"
}

// Daemon configures the receiving side.
type Daemon struct {
	Listen      string `yaml:"listen"`
	LEDCount    int    `yaml:"led_count"`
	Dim         Dim    `yaml:"dim,omitempty"`
	Driver      string `yaml:"driver"` // "spi" | "screen" | "sim"
	SPI         SPI    `yaml:"spi,omitempty"`
	PreviewAddr string `yaml:"preview_addr,omitempty"`
}

type Config struct {
	Client Client `yaml:"client"`
	Daemon Daemon `yaml:"daemon"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// ParseColor accepts "#rrggbb", "rrggbb" or "r,g,b" with decimal channels.
func ParseColor(s string) (render.Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return render.Color{}, fmt.Errorf("color %q: want r,g,b", s)
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return render.Color{}, fmt.Errorf("color %q: %w", s, err)
			}
			ch[i] = uint8(v)
		}
		return render.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return render.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return render.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return render.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseColors parses every entry, stopping at the first bad one.
func ParseColors(ss []string) ([]render.Color, error) {
	out := make([]render.Color, 0, len(ss))
	for _, s := range ss {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
