package wire

import (
	"fmt"
	"net"
	"strconv"
	"sync"
)

// Sender writes frames as single datagrams to one fixed destination. Sends
// are fire-and-forget: nothing is acknowledged, retried or queued.
type Sender struct {
	mu   sync.Mutex
	conn net.Conn
	dst  string
}

// Dial resolves host once and binds the sender to (host, port).
func Dial(host string, port int) (*Sender, error) {
	dst := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("udp", dst)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", dst, err)
	}
	return &Sender{conn: conn, dst: dst}, nil
}

// Addr is the destination the sender is bound to.
func (s *Sender) Addr() string { return s.dst }

// Write sends frame as one datagram.
func (s *Sender) Write(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return fmt.Errorf("send to %s: sender closed", s.dst)
	}
	if _, err := s.conn.Write(frame); err != nil {
		return fmt.Errorf("send to %s: %w", s.dst, err)
	}
	return nil
}

func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
