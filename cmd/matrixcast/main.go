package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/matrixcast/internal/app"
	"github.com/coreman2200/matrixcast/internal/config"
	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
	"github.com/coreman2200/matrixcast/internal/wire"
)

func main() {
	// ---- Flags ----
	var (
		pattern    = flag.String("pattern", "counter2", "pattern: solid | bits | sweep | counter2 | counter4 | counter8")
		preset     = flag.String("preset", "", "pattern preset (e.g. Red, Rainbow, Ramp)")
		colors     = flag.String("colors", "", "color list, ';' separated: #rrggbb or r,g,b")
		interval   = flag.Duration("interval", 100*time.Millisecond, "time between frames")
		port       = flag.Int("port", wire.Port, "daemon UDP port")
		once       = flag.Bool("once", false, "send a single frame and exit")
		configPath = flag.String("config", "matrixcast.yaml", "path to config yaml")
		saveConfig = flag.String("save-config", "", "write the effective settings to this yaml file and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] DST X Y\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  DST  daemon host")
		fmt.Fprintln(flag.CommandLine.Output(), "  X    X axis LED count")
		fmt.Fprintln(flag.CommandLine.Output(), "  Y    Y axis LED count (1 for linear)")
		flag.PrintDefaults()
	}
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// ---- Effective params ----
	// Positional DST X Y beat the config file; the file beats flag defaults.
	st := settings{
		Pattern:  *pattern,
		Preset:   *preset,
		Interval: *interval,
		Colors:   splitColors(*colors),
	}
	if flag.NArg() == 3 {
		st.Dst = flag.Arg(0)
		st.Dim = layout.Dim{X: atoi(flag.Arg(1)), Y: atoi(flag.Arg(2))}
	}
	if cfg, err := config.Load(*configPath); err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		}
	} else {
		st.merge(cfg.Client)
	}

	if *saveConfig != "" {
		if err := config.Save(*saveConfig, &config.Config{Client: st.client()}); err != nil {
			log.Fatal().Err(err).Msg("save config")
		}
		log.Info().Str("path", *saveConfig).Msg("config written")
		return
	}

	dst, dim := st.Dst, st.Dim
	ePattern, ePreset, eInterval, eColors := st.Pattern, st.Preset, st.Interval, st.Colors
	if dst == "" || !dim.Valid() {
		flag.Usage()
		os.Exit(2)
	}

	// ---- Patterns ----
	reg := render.NewRegistry()
	app.RegisterDefaults(reg)
	if _, ok := reg.Get(ePattern); !ok {
		names := reg.List()
		sort.Strings(names)
		log.Fatal().Str("pattern", ePattern).Strs("available", names).Msg("unknown pattern")
	}
	if len(eColors) > 0 {
		cs, err := config.ParseColors(eColors)
		if err != nil {
			log.Fatal().Err(err).Msg("bad colors")
		}
		app.SetColors(reg, ePattern, cs)
	}

	// ---- Transport ----
	snd, err := wire.Dial(dst, *port)
	if err != nil {
		log.Fatal().Err(err).Msg("dial failed")
	}
	defer snd.Close()

	c := app.NewConductor(dim, reg, snd)
	if err := c.SetRenderer(ePattern, ePreset); err != nil {
		log.Fatal().Err(err).Msg("set pattern")
	}

	log.Info().
		Str("dst", snd.Addr()).
		Int("x", dim.X).Int("y", dim.Y).
		Str("pattern", ePattern).
		Dur("interval", eInterval).
		Msg("sending")

	if *once {
		if err := c.RenderOnce(); err != nil {
			log.Fatal().Err(err).Msg("send failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	c.Run(ctx, eInterval)
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func splitColors(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}
