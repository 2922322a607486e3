package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/matrixcast/internal/config"
	"github.com/coreman2200/matrixcast/internal/layout"
)

func TestPositionalArgsBeatConfigFile(t *testing.T) {
	st := settings{Dst: "10.0.0.5", Dim: layout.Dim{X: 8, Y: 8}, Pattern: "counter2"}
	st.merge(config.Client{Dst: "elsewhere", Dim: config.Dim{X: 16, Y: 16}, Pattern: "bits"})

	assert.Equal(t, "10.0.0.5", st.Dst)
	assert.Equal(t, layout.Dim{X: 8, Y: 8}, st.Dim)
	assert.Equal(t, "bits", st.Pattern)
}

func TestConfigFillsMissingArgs(t *testing.T) {
	st := settings{Pattern: "counter2", Interval: 100 * time.Millisecond}
	st.merge(config.Client{Dst: "matrix.local", Dim: config.Dim{X: 4, Y: 1}, IntervalMs: 250, Colors: []string{"#00ff00"}})

	assert.Equal(t, "matrix.local", st.Dst)
	assert.Equal(t, layout.Dim{X: 4, Y: 1}, st.Dim)
	assert.Equal(t, "counter2", st.Pattern)
	assert.Equal(t, 250*time.Millisecond, st.Interval)
	assert.Equal(t, []string{"#00ff00"}, st.Colors)
}

func TestSavedSettingsLoadBack(t *testing.T) {
	st := settings{Dst: "10.0.0.5", Dim: layout.Dim{X: 16, Y: 8}, Pattern: "counter4", Preset: "RGB", Interval: 50 * time.Millisecond}
	path := filepath.Join(t.TempDir(), "matrixcast.yaml")
	require.NoError(t, config.Save(path, &config.Config{Client: st.client()}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	var got settings
	got.merge(cfg.Client)
	assert.Equal(t, st, got)
}
