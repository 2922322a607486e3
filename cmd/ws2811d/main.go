package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/matrixcast/internal/config"
	"github.com/coreman2200/matrixcast/internal/daemon"
	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/led"
	"github.com/coreman2200/matrixcast/internal/preview"
	"github.com/coreman2200/matrixcast/internal/wire"
)

func main() {
	// ---- Flags (config yaml can override) ----
	var (
		count      = flag.Int("led-count", 0, "number of LEDs on the strip")
		listen     = flag.String("listen", ":"+strconv.Itoa(wire.Port), "UDP listen address")
		driver     = flag.String("driver", "spi", "driver: spi | screen | sim")
		spiDev     = flag.String("spi", "", "SPI port name (empty for the first one)")
		freq       = flag.Int64("frequency", 800000, "strip data rate in Hz")
		previewAt  = flag.String("preview", "", "HTTP address for /ws and /health (empty to disable)")
		configPath = flag.String("config", "ws2811d.yaml", "path to config yaml")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	eCount, eListen, eDriver := *count, *listen, *driver
	eSPI, eFreq, ePreview := *spiDev, *freq, *previewAt
	var dim layout.Dim

	if cfg, err := config.Load(*configPath); err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		}
	} else {
		d := cfg.Daemon
		if d.LEDCount > 0 {
			eCount = d.LEDCount
		}
		if d.Listen != "" {
			eListen = d.Listen
		}
		if d.Driver != "" {
			eDriver = d.Driver
		}
		if d.SPI.Dev != "" {
			eSPI = d.SPI.Dev
		}
		if d.SPI.FreqHz > 0 {
			eFreq = d.SPI.FreqHz
		}
		if d.PreviewAddr != "" {
			ePreview = d.PreviewAddr
		}
		dim = layout.Dim{X: d.Dim.X, Y: d.Dim.Y}
	}
	if eCount <= 0 {
		log.Fatal().Int("led_count", eCount).Msg("--led-count is required")
	}
	if !dim.Valid() {
		dim = layout.Dim{X: eCount, Y: 1}
	}

	// ---- Driver selection ----
	var drv led.Driver
	switch eDriver {
	case "spi":
		n, err := led.OpenNRZ(eSPI, eCount, physic.Frequency(eFreq)*physic.Hertz)
		if err != nil {
			log.Warn().Err(err).Str("driver", "spi").Str("dev", eSPI).
				Msg("SPI init failed; falling back to screen")
			drv, eDriver = led.NewScreen(eCount), "screen"
		} else {
			drv = n
		}
	case "screen":
		drv = led.NewScreen(eCount)
	case "sim":
		drv = led.NewSim()
	default:
		log.Warn().Str("driver", eDriver).Msg("unknown driver; using sim")
		drv, eDriver = led.NewSim(), "sim"
	}
	defer func() {
		if err := drv.Close(); err != nil {
			log.Warn().Err(err).Msg("driver close")
		}
	}()

	srv := daemon.New(eCount, drv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- Preview ----
	if ePreview != "" {
		hub := preview.New(srv, dim, eDriver)
		hs := &http.Server{
			Addr:         ePreview,
			Handler:      hub.Routes(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", ePreview).Msg("preview server starting")
			if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("preview server crashed")
			}
		}()
		go func() {
			<-ctx.Done()
			_ = hs.Close()
		}()
	}

	log.Info().Str("driver", eDriver).Int("count", eCount).Msg("ws2811d starting")
	if err := srv.ListenAndServe(ctx, eListen); err != nil {
		log.Error().Err(err).Msg("daemon stopped")
		return
	}
	st := srv.Stats()
	log.Info().Uint64("frames", st.Frames).Uint64("dropped", st.Dropped).Msg("shutting down")
}
