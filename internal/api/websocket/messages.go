package websocket

import (
	"time"

	"github.com/fortuna/courtside/internal/leaderboard"
)

// Message types exchanged with clients
const (
	MessageTypeLeaderboardUpdated = "leaderboard.updated"
	MessageTypeSubscribe          = "subscribe"
	MessageTypeUnsubscribe        = "unsubscribe"
	MessageTypeHeartbeat          = "heartbeat"
	MessageTypeError              = "error"
)

// ServerMessage is every frame sent to a client
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClientMessage is every frame read from a client
type ClientMessage struct {
	Type    string             `json:"type"`
	Payload SubscriptionFilter `json:"payload"`
}

// SubscriptionFilter narrows the updates a client receives. Empty means
// every mode.
type SubscriptionFilter struct {
	Modes []leaderboard.Mode `json:"modes,omitempty"`
}

// LeaderboardUpdate is the default leaderboard for one mode after a
// snapshot change
type LeaderboardUpdate struct {
	Season      string             `json:"season"`
	Fingerprint string             `json:"fingerprint"`
	Mode        leaderboard.Mode   `json:"mode"`
	Result      leaderboard.Result `json:"result"`
}

// ErrorMessage is the payload of an error frame
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConnectionStats is the payload of a heartbeat reply
type ConnectionStats struct {
	ClientID         string    `json:"client_id"`
	ConnectedAt      time.Time `json:"connected_at"`
	MessagesSent     int64     `json:"messages_sent"`
	MessagesReceived int64     `json:"messages_received"`
	Modes            []string  `json:"modes,omitempty"`
}
