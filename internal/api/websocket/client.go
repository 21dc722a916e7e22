package websocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/leaderboard"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 64
)

// Client is one connected WebSocket subscriber
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan ServerMessage
	hub  *Hub
	log  *logrus.Entry

	mu               sync.Mutex
	closed           bool
	filter           SubscriptionFilter
	connectedAt      time.Time
	messagesSent     int64
	messagesReceived int64
}

func newClient(id string, conn *websocket.Conn, hub *Hub, log *logrus.Entry) *Client {
	return &Client{
		ID:          id,
		conn:        conn,
		send:        make(chan ServerMessage, sendBufferSize),
		hub:         hub,
		log:         log.WithField("client_id", id),
		connectedAt: time.Now(),
	}
}

// readPump handles subscription frames until the connection drops
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if ctx.Err() != nil {
			return
		}
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("⚠️  unexpected close")
			}
			return
		}

		c.mu.Lock()
		c.messagesReceived++
		c.mu.Unlock()
		c.handleMessage(msg)
	}
}

// writePump drains send and keeps the connection alive with pings
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.WithError(err).Debug("write failed")
				return
			}
			c.mu.Lock()
			c.messagesSent++
			c.mu.Unlock()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend queues a message without blocking; false means the buffer is
// full or the hub has already closed the client
func (c *Client) trySend(msg ServerMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// close shuts the send channel once; later trySend calls are no-ops
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// wants reports whether the client's filter accepts a mode
func (c *Client) wants(mode leaderboard.Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.filter.Modes) == 0 {
		return true
	}
	for _, m := range c.filter.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (c *Client) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case MessageTypeSubscribe:
		var filter SubscriptionFilter
		for _, m := range msg.Payload.Modes {
			mode, err := leaderboard.ParseMode(string(m))
			if err != nil {
				c.sendError("invalid_filter", err.Error())
				return
			}
			filter.Modes = append(filter.Modes, mode)
		}
		c.mu.Lock()
		c.filter = filter
		c.mu.Unlock()
		c.log.WithField("modes", filter.Modes).Info("subscribed")
	case MessageTypeUnsubscribe:
		c.mu.Lock()
		c.filter = SubscriptionFilter{}
		c.mu.Unlock()
	case MessageTypeHeartbeat:
		c.trySend(ServerMessage{Type: MessageTypeHeartbeat, Payload: c.stats(), Timestamp: time.Now()})
	default:
		c.sendError("unknown_message_type", fmt.Sprintf("unknown message type: %s", msg.Type))
	}
}

func (c *Client) sendError(code, message string) {
	c.trySend(ServerMessage{
		Type:      MessageTypeError,
		Payload:   ErrorMessage{Code: code, Message: message},
		Timestamp: time.Now(),
	})
}

func (c *Client) stats() ConnectionStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := ConnectionStats{
		ClientID:         c.ID,
		ConnectedAt:      c.connectedAt,
		MessagesSent:     c.messagesSent,
		MessagesReceived: c.messagesReceived,
	}
	for _, m := range c.filter.Modes {
		stats.Modes = append(stats.Modes, string(m))
	}
	return stats
}
