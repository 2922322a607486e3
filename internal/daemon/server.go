package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/matrixcast/internal/led"
	"github.com/coreman2200/matrixcast/internal/wire"
)

// Server receives frames over UDP and applies them to an LED driver. A
// datagram is either a 3-byte fill or exactly 3*Count bytes; anything else
// is dropped.
type Server struct {
	Count int
	Drv   led.Driver

	// OnFrame, if set, sees every accepted frame after it reached the driver.
	OnFrame func(id uint64, rgb []byte)

	mu      sync.RWMutex
	frameID uint64
	dropped uint64
	last    []byte
}

type Stats struct {
	Frames  uint64
	Dropped uint64
}

func New(count int, drv led.Driver) *Server {
	return &Server{Count: count, Drv: drv}
}

// ListenAndServe binds addr (e.g. ":1337") and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	pc, err := net.ListenPacket("udp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, pc)
}

// Serve reads datagrams from pc until ctx is done. pc is closed on return.
func (s *Server) Serve(ctx context.Context, pc net.PacketConn) error {
	if s.Count <= 0 {
		_ = pc.Close()
		return fmt.Errorf("invalid LED count: %d", s.Count)
	}
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		_ = pc.Close()
	}()

	log.Info().Str("addr", pc.LocalAddr().String()).Int("count", s.Count).Msg("daemon listening")

	// One spare byte so oversized datagrams are not silently truncated to
	// a valid size.
	buf := make([]byte, s.Count*wire.BytesPerPixel+1)
	for {
		n, from, err := pc.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		if err := s.Handle(buf[:n]); err != nil {
			log.Warn().Err(err).Str("from", from.String()).Msg("frame dropped")
		}
	}
}

// Handle validates one payload and pushes it to the driver.
func (s *Server) Handle(payload []byte) error {
	rgb, err := wire.Expand(payload, s.Count)
	if err != nil {
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		return err
	}
	// payload aliases the read buffer
	frame := append([]byte(nil), rgb...)
	if s.Drv != nil {
		if err := s.Drv.Write(frame); err != nil {
			s.mu.Lock()
			s.dropped++
			s.mu.Unlock()
			return fmt.Errorf("driver: %w", err)
		}
	}

	s.mu.Lock()
	s.frameID++
	id := s.frameID
	s.last = frame
	s.mu.Unlock()

	if s.OnFrame != nil {
		s.OnFrame(id, frame)
	}
	return nil
}

func (s *Server) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Frames: s.frameID, Dropped: s.dropped}
}

// Last is the most recent accepted frame, nil before the first one.
func (s *Server) Last() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.last...)
}
