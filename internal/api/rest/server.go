package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Options configures the REST server
type Options struct {
	Port           string
	AllowedOrigins []string
	HealthChecks   map[string]HealthCheck
	Refresher      Refresher // optional
	RateLimit      float64   // requests per second; 0 disables
	RateBurst      int
}

// Server represents the REST API server
type Server struct {
	server  *http.Server
	handler http.Handler
	log     *logrus.Entry
}

// NewServer creates a new REST API server
func NewServer(boards LeaderboardProvider, opts Options, log *logrus.Entry) *Server {
	log = log.WithField("component", "rest")
	handler := NewHandler(boards, opts.HealthChecks, log)

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))
	router.Use(RateLimitMiddleware(opts.RateLimit, opts.RateBurst))

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods("GET")
	api.HandleFunc("/leaderboard/players", handler.GetPlayerLeaderboard).Methods("GET")
	api.HandleFunc("/leaderboard/teams", handler.GetTeamLeaderboard).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/metrics", handler.GetMetrics).Methods("GET")

	if opts.Refresher != nil {
		refresh := NewRefreshHandler(opts.Refresher)
		api.HandleFunc("/refresh", refresh.HandleRefresh).Methods("POST")
		api.HandleFunc("/refresh/status", refresh.HandleRefreshStatus).Methods("GET")
	}

	// CORS wraps the router so preflight requests bypass method matching
	root := CORSMiddleware(opts.AllowedOrigins)(router)

	return &Server{
		handler: root,
		log:     log,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", opts.Port),
			Handler:           root,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the fully wrapped router
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the REST API server
func (s *Server) Start() error {
	s.log.Infof("REST API listening on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
