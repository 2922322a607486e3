package led

import (
	"sync"

	"periph.io/x/devices/v3/screen1d"
)

// Screen prints the strip as a row of colored cells on the terminal, for
// hosts with no SPI port.
type Screen struct {
	mu  sync.Mutex
	dev *screen1d.Dev
}

func NewScreen(count int) *Screen {
	return &Screen{dev: screen1d.New(&screen1d.Opts{X: count})}
}

func (s *Screen) Write(rgb []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.dev.Write(rgb)
	return err
}

func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dev.Halt()
}
