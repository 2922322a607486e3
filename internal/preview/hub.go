package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/matrixcast/internal/daemon"
	"github.com/coreman2200/matrixcast/internal/layout"
)

// Hub mirrors the frames a daemon accepts to websocket clients.
type Hub struct {
	mu        sync.RWMutex
	Dim       layout.Dim
	Driver    string
	srv       *daemon.Server
	clients   map[*client]struct{}
	startTime time.Time
}

// client serializes writes to one conn; gorilla allows a single writer.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

const writeWait = 200 * time.Millisecond

func (c *client) write(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

type frameMsg struct {
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	RGB     []byte `json:"rgb"`
}

// New hooks the hub onto srv's frame callback.
func New(srv *daemon.Server, dim layout.Dim, driver string) *Hub {
	h := &Hub{
		Dim:       dim,
		Driver:    driver,
		srv:       srv,
		clients:   map[*client]struct{}{},
		startTime: time.Now(),
	}
	srv.OnFrame = h.Broadcast
	return h
}

func (h *Hub) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.HandleFramesWS)
	mux.HandleFunc("/health", h.HandleHealth)
	return mux
}

func (h *Hub) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn}
	// Topology goes out before the client is visible to Broadcast.
	if err := h.sendTopology(c); err != nil {
		log.Debug().Err(err).Msg("write topology")
		conn.Close()
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer h.drop(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) HandleHealth(w http.ResponseWriter, r *http.Request) {
	st := h.srv.Stats()
	resp := map[string]any{
		"frame_id": st.Frames,
		"dropped":  st.Dropped,
		"uptime_s": time.Since(h.startTime).Seconds(),
		"count":    h.srv.Count,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Hub) sendTopology(c *client) error {
	top := map[string]any{
		"dim":    map[string]int{"x": h.Dim.X, "y": h.Dim.Y},
		"count":  h.srv.Count,
		"driver": h.Driver,
	}
	b, err := json.Marshal(top)
	if err != nil {
		return err
	}
	return c.write(b)
}

// Broadcast sends one frame to every connected client. A client whose write
// fails is disconnected.
func (h *Hub) Broadcast(id uint64, rgb []byte) {
	b, err := json.Marshal(frameMsg{T: time.Now().UnixNano(), FrameID: id, RGB: rgb})
	if err != nil {
		log.Warn().Err(err).Msg("marshal frame")
		return
	}
	h.mu.RLock()
	cs := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		cs = append(cs, c)
	}
	h.mu.RUnlock()

	for _, c := range cs {
		if err := c.write(b); err != nil {
			log.Debug().Err(err).Msg("write frame")
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.conn.Close()
}

// Clients is the number of connected preview clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
