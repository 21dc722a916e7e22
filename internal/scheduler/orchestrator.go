package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/api/websocket"
	"github.com/fortuna/courtside/internal/leaderboard"
	"github.com/fortuna/courtside/internal/publisher"
	"github.com/fortuna/courtside/internal/service"
)

// Leaderboards is the service surface the orchestrator drives
type Leaderboards interface {
	Season() string
	Snapshot(ctx context.Context) (service.Snapshot, error)
	Compute(ctx context.Context, snap service.Snapshot, q leaderboard.Query) (leaderboard.Result, error)
	Invalidate(ctx context.Context, fingerprint string) (int, error)
}

// EventPublisher announces snapshot changes downstream
type EventPublisher interface {
	PublishLeaderboardUpdated(ctx context.Context, event publisher.LeaderboardUpdated) error
}

// Broadcaster pushes recomputed leaderboards to live clients
type Broadcaster interface {
	BroadcastLeaderboard(update websocket.LeaderboardUpdate)
}

// Config holds refresh loop configuration
type Config struct {
	RefreshInterval time.Duration // Default: 30s
	EnableRefresh   bool          // Default: true
	MaxRetries      int           // Default: 3
	RetryDelay      time.Duration // Default: 5s
}

// DefaultConfig returns default orchestrator configuration
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval: 30 * time.Second,
		EnableRefresh:   true,
		MaxRetries:      3,
		RetryDelay:      5 * time.Second,
	}
}

// Orchestrator polls the league snapshot and fans out changes
type Orchestrator struct {
	boards      Leaderboards
	publisher   EventPublisher
	broadcaster Broadcaster
	config      *Config
	log         *logrus.Entry
	cancel      context.CancelFunc

	mu          sync.Mutex
	fingerprint string
	lastRefresh time.Time
	lastChange  time.Time
	refreshes   int
	changes     int
}

// NewOrchestrator creates a refresh orchestrator. publisher and broadcaster
// may be nil.
func NewOrchestrator(boards Leaderboards, pub EventPublisher, bc Broadcaster, config *Config, log *logrus.Entry) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	return &Orchestrator{
		boards:      boards,
		publisher:   pub,
		broadcaster: bc,
		config:      config,
		log:         log.WithField("component", "orchestrator"),
	}
}

// Start runs the refresh loop until ctx is cancelled or Stop is called
func (o *Orchestrator) Start(ctx context.Context) {
	o.log.Info("╔════════════════════════════════════════╗")
	o.log.Info("║   Courtside Refresh Orchestrator       ║")
	o.log.Info("╚════════════════════════════════════════╝")
	o.log.Infof("Refresh: %v (interval: %v)", o.config.EnableRefresh, o.config.RefreshInterval)
	o.log.Infof("Season: %s", o.boards.Season())

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	defer cancel()

	if !o.config.EnableRefresh {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	consecutiveErrors := 0
	o.refreshWithRetry(ctx, &consecutiveErrors)

	for {
		select {
		case <-ctx.Done():
			o.log.Info("→ Refresh loop stopped")
			return
		case <-ticker.C:
			o.refreshWithRetry(ctx, &consecutiveErrors)
		}
	}
}

// Stop cancels the refresh loop
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	o.log.Info("✓ Orchestrator stopped")
}

func (o *Orchestrator) refreshWithRetry(ctx context.Context, consecutiveErrors *int) {
	var err error
	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		if _, err = o.Refresh(ctx); err == nil {
			*consecutiveErrors = 0
			return
		}

		o.log.WithError(err).Warnf("  ⚠️  Refresh attempt %d/%d failed", attempt, o.config.MaxRetries)
		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	*consecutiveErrors++
	o.log.Errorf("  ❌ All %d refresh attempts failed. Consecutive errors: %d", o.config.MaxRetries, *consecutiveErrors)
}

// Refresh loads the snapshot once and, when its fingerprint changed since
// the last refresh, invalidates cached results, publishes an update event
// and broadcasts the default leaderboards. It reports whether a change was
// seen. The first successful refresh always counts as a change.
func (o *Orchestrator) Refresh(ctx context.Context) (bool, error) {
	snap, err := o.boards.Snapshot(ctx)
	if err != nil {
		return false, err
	}

	o.mu.Lock()
	previous := o.fingerprint
	o.refreshes++
	o.lastRefresh = time.Now()
	if snap.Fingerprint == previous {
		o.mu.Unlock()
		return false, nil
	}
	o.fingerprint = snap.Fingerprint
	o.lastChange = o.lastRefresh
	o.changes++
	o.mu.Unlock()

	invalidated, err := o.boards.Invalidate(ctx, previous)
	if err != nil {
		o.log.WithError(err).Warn("⚠️  Failed to invalidate cached results")
	}

	o.log.WithFields(logrus.Fields{
		"fingerprint": snap.Fingerprint,
		"previous":    previous,
		"invalidated": invalidated,
	}).Info("✓ League snapshot changed")

	if o.publisher != nil {
		if err := o.publisher.PublishLeaderboardUpdated(ctx, buildEvent(o.boards.Season(), previous, invalidated, snap)); err != nil {
			o.log.WithError(err).Warn("⚠️  Failed to publish update event")
		}
	}

	if o.broadcaster != nil {
		for _, mode := range []leaderboard.Mode{leaderboard.ModePlayers, leaderboard.ModeTeams} {
			result, err := o.boards.Compute(ctx, snap, leaderboard.DefaultQuery(mode))
			if err != nil {
				return true, fmt.Errorf("computing %s leaderboard: %w", mode, err)
			}
			o.broadcaster.BroadcastLeaderboard(websocket.LeaderboardUpdate{
				Season:      o.boards.Season(),
				Fingerprint: snap.Fingerprint,
				Mode:        mode,
				Result:      result,
			})
		}
	}

	return true, nil
}

// GetStatus returns current orchestrator status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	o.mu.Lock()
	defer o.mu.Unlock()

	return map[string]interface{}{
		"refresh_enabled":  o.config.EnableRefresh,
		"refresh_interval": o.config.RefreshInterval.String(),
		"season":           o.boards.Season(),
		"fingerprint":      o.fingerprint,
		"refreshes":        o.refreshes,
		"changes":          o.changes,
		"last_refresh":     o.lastRefresh,
		"last_change":      o.lastChange,
	}
}

func buildEvent(season, previous string, invalidated int, snap service.Snapshot) publisher.LeaderboardUpdated {
	event := publisher.LeaderboardUpdated{
		EventID:     uuid.NewString(),
		Season:      season,
		Fingerprint: snap.Fingerprint,
		Previous:    previous,
		Teams:       len(snap.League.Teams),
		Invalidated: invalidated,
		ComputedAt:  time.Now().UTC(),
	}
	for _, t := range snap.League.Teams {
		event.Players += len(t.Roster)
	}
	for _, g := range snap.League.Schedule {
		if g.Played {
			event.GamesPlayed++
		}
	}
	return event
}
