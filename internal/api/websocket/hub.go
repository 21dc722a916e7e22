package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Hub tracks connected clients and fans leaderboard updates out to them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan LeaderboardUpdate
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	totalConnections int64
	totalMessages    int64
	metricsMu        sync.Mutex

	log *logrus.Entry
}

// NewHub creates a new Hub
func NewHub(log *logrus.Entry) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan LeaderboardUpdate, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log.WithField("component", "ws_hub"),
	}
}

// Run processes hub events until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	h.log.Info("✓ Hub started")
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case update := <-h.broadcast:
			h.broadcastUpdate(update)
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues an update for every subscribed client. Updates are
// dropped when the queue is full.
func (h *Hub) Broadcast(update LeaderboardUpdate) {
	select {
	case h.broadcast <- update:
	default:
		h.log.WithField("mode", update.Mode).Warn("⚠️  Broadcast buffer full, dropping update")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Metrics returns connection and message counters
func (h *Hub) Metrics() map[string]interface{} {
	active := h.ClientCount()

	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()

	return map[string]interface{}{
		"active_clients":    active,
		"total_connections": h.totalConnections,
		"total_messages":    h.totalMessages,
	}
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.clientsMu.Unlock()

	h.metricsMu.Lock()
	h.totalConnections++
	h.metricsMu.Unlock()

	h.log.WithFields(logrus.Fields{"client_id": c.ID, "total": n}).Info("client connected")
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
		h.log.WithFields(logrus.Fields{"client_id": c.ID, "total": len(h.clients)}).Info("client disconnected")
	}
}

func (h *Hub) broadcastUpdate(update LeaderboardUpdate) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	msg := ServerMessage{
		Type:      MessageTypeLeaderboardUpdated,
		Payload:   update,
		Timestamp: time.Now(),
	}

	sent, dropped := 0, 0
	for _, c := range clients {
		if !c.wants(update.Mode) {
			continue
		}
		if c.trySend(msg) {
			sent++
			continue
		}
		dropped++
		h.log.WithField("client_id", c.ID).Warn("⚠️  client buffer full, disconnecting")
		go h.Unregister(c)
	}

	h.metricsMu.Lock()
	h.totalMessages += int64(sent)
	h.metricsMu.Unlock()

	if dropped > 0 {
		h.log.WithField("dropped", dropped).Warn("⚠️  slow clients dropped")
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.log.WithField("clients", len(h.clients)).Info("Shutting down hub")
	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}
