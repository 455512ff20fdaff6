// Package broadcast streams simulation events to WebSocket subscribers.
// The daemon publishes race results and sweep summaries; spectating
// clients connect to the hub and receive every event as JSON.
package broadcast

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/models"
)

// Event operation codes sent on the wire.
const (
	OpRaceResult = "race_result"
	OpSweep      = "sweep"
	OpHeartbeat  = "heartbeat"
)

// Event is the envelope for every broadcast message.
type Event struct {
	Op        string             `json:"op"`
	Timestamp time.Time          `json:"timestamp"`
	Race      *models.RaceResult `json:"race,omitempty"`
	Sweep     interface{}        `json:"sweep,omitempty"`
}

// Hub fans events out to connected WebSocket clients. Slow clients are
// disconnected rather than allowed to block the publisher.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *logrus.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

const clientBuffer = 16

// NewHub creates a broadcast hub.
func NewHub(logger *logrus.Logger) *Hub {
	if logger == nil {
		logger = logrus.New()
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			// Spectator feed is read-only and unauthenticated
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// Handler returns the HTTP handler that upgrades subscribers.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.WithError(err).Warn("WebSocket upgrade failed")
			return
		}

		c := &client{conn: conn, send: make(chan Event, clientBuffer)}

		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			conn.Close()
			return
		}
		h.clients[c] = struct{}{}
		count := len(h.clients)
		h.mu.Unlock()

		h.logger.WithField("clients", count).Info("Spectator connected")

		go h.writeLoop(c)
		go h.readLoop(c)
	}
}

// Publish sends an event to every connected client.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- event:
		default:
			// Buffer full, the writer will be reaped on close
			h.logger.Warn("Dropping event for slow spectator")
		}
	}
}

// PublishRaceResult broadcasts a resolved race.
func (h *Hub) PublishRaceResult(result *models.RaceResult) {
	h.Publish(Event{Op: OpRaceResult, Race: result})
}

// PublishSweep broadcasts a sweep summary.
func (h *Hub) PublishSweep(summary interface{}) {
	h.Publish(Event{Op: OpSweep, Sweep: summary})
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients and stops accepting new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// writeLoop drains the client's send channel, keeping the connection
// alive with heartbeats while the simulation is idle.
func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteJSON(Event{Op: OpHeartbeat, Timestamp: time.Now().UTC()}); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

// readLoop discards inbound frames so control messages are processed,
// and reaps the client when the peer goes away.
func (h *Hub) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.remove(c)
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}
