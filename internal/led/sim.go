package led

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/matrixcast/internal/wire"
)

// Sim accepts frames without hardware and keeps the last one.
type Sim struct {
	mu    sync.Mutex
	count int
	last  []byte
}

func NewSim() *Sim { return &Sim{} }

// Write rejects buffers that are not whole pixels, like a real strip would.
func (s *Sim) Write(rgb []byte) error {
	px, err := wire.Decode(rgb)
	if err != nil {
		return err
	}
	lit := 0
	for _, c := range px {
		if c.R|c.G|c.B != 0 {
			lit++
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.last = append(s.last[:0], rgb...)
	log.Debug().Int("frame", s.count).Int("pixels", len(px)).Int("lit", lit).Msg("sim frame")
	return nil
}

func (s *Sim) Close() error { return nil }

// Frames is the number of frames written so far.
func (s *Sim) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Last returns a copy of the most recent frame.
func (s *Sim) Last() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.last...)
}
