package led

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// DefaultFreq is the ws2811 data rate.
const DefaultFreq = 800 * physic.KiloHertz

// NRZ drives a ws2811 strip through nrzled over SPI. Each data bit is
// expanded to three SPI bits, so the port runs at 3x the strip rate.
type NRZ struct {
	mu    sync.Mutex
	dev   *nrzled.Dev
	port  spi.PortCloser
	count int
}

// OpenNRZ initialises the host drivers and opens the named SPI port ("" for
// the first one available).
func OpenNRZ(name string, count int, freq physic.Frequency) (*NRZ, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", name, err)
	}
	n, err := NewNRZ(p, count, freq)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return n, nil
}

// NewNRZ wraps an already opened SPI port.
func NewNRZ(p spi.PortCloser, count int, freq physic.Frequency) (*NRZ, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if freq <= 0 {
		freq = DefaultFreq
	}
	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      freq*3 + 100*physic.KiloHertz,
	}
	d, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	log.Debug().Str("dev", d.String()).Int("count", count).Msg("nrz strip ready")
	return &NRZ{dev: d, port: p, count: count}, nil
}

func (n *NRZ) Write(rgb []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return fmt.Errorf("nrz closed")
	}
	if len(rgb) != n.count*3 {
		return fmt.Errorf("rgb length %d does not match count %d", len(rgb), n.count)
	}
	if _, err := n.dev.Write(rgb); err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	return nil
}

// Close blanks the strip and releases the port.
func (n *NRZ) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return nil
	}
	err := n.dev.Halt()
	if cerr := n.port.Close(); err == nil {
		err = cerr
	}
	n.dev = nil
	return err
}
