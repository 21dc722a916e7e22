package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Server serves leaderboard updates over WebSocket
type Server struct {
	hub      *Hub
	server   *http.Server
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc
	log      *logrus.Entry
}

// NewServer creates a WebSocket server. allowedOrigins may contain "*".
func NewServer(allowedOrigins []string, log *logrus.Entry) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		hub:    NewHub(log),
		ctx:    ctx,
		cancel: cancel,
		log:    log.WithField("component", "ws_server"),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	go s.hub.Run(ctx)
	return s
}

// Handler returns the HTTP routes served by the WebSocket server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("/ws/health", s.handleHealth)
	return mux
}

// Start listens on port until Shutdown
func (s *Server) Start(port string) error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: s.Handler(),
	}

	s.log.Infof("WebSocket server listening on :%s", port)
	return s.server.ListenAndServe()
}

// BroadcastLeaderboard pushes an update to subscribed clients
func (s *Server) BroadcastLeaderboard(update LeaderboardUpdate) {
	s.hub.Broadcast(update)
}

// Hub exposes the client hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Shutdown closes every client and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("⚠️  Failed to upgrade connection")
		return
	}

	c := newClient(uuid.NewString(), conn, s.hub, s.log)
	s.hub.Register(c)

	go c.writePump(s.ctx)
	go c.readPump(s.ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	metrics := s.hub.Metrics()
	metrics["status"] = "healthy"
	json.NewEncoder(w).Encode(metrics)
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}
