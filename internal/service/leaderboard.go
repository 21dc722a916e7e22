package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/leaderboard"
)

// LeagueSource loads the league snapshot for a season
type LeagueSource interface {
	Load(ctx context.Context, season string) (leaderboard.League, error)
}

// ResultCache stores computed results. *cache.RedisCache satisfies it.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) (int, error)
}

// TeamSummary is a team option for the team selector
type TeamSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	RosterSize   int    `json:"roster_size"`
}

// Snapshot is a loaded league with its content fingerprint
type Snapshot struct {
	League      leaderboard.League
	Fingerprint string
}

// LeaderboardService answers leaderboard queries against the current season
type LeaderboardService struct {
	source LeagueSource
	cache  ResultCache
	season string
	ttl    time.Duration
	log    *logrus.Entry
}

// NewLeaderboardService creates a leaderboard service. cache may be nil, in
// which case every query is computed.
func NewLeaderboardService(source LeagueSource, rc ResultCache, season string, ttl time.Duration, log *logrus.Entry) *LeaderboardService {
	return &LeaderboardService{
		source: source,
		cache:  rc,
		season: season,
		ttl:    ttl,
		log:    log.WithField("component", "leaderboard_service"),
	}
}

// Season returns the season this service reads
func (s *LeaderboardService) Season() string {
	return s.season
}

// Snapshot loads and fingerprints the current league
func (s *LeaderboardService) Snapshot(ctx context.Context) (Snapshot, error) {
	league, err := s.source.Load(ctx, s.season)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading league: %w", err)
	}
	fp, err := Fingerprint(league)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{League: league, Fingerprint: fp}, nil
}

// Leaderboard computes (or serves from cache) the result of one query
func (s *LeaderboardService) Leaderboard(ctx context.Context, q leaderboard.Query) (leaderboard.Result, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return leaderboard.Result{}, err
	}
	return s.Compute(ctx, snap, q)
}

// Compute answers a query against an already loaded snapshot
func (s *LeaderboardService) Compute(ctx context.Context, snap Snapshot, q leaderboard.Query) (leaderboard.Result, error) {
	if q.Mode == "" {
		q.Mode = leaderboard.ModePlayers
	}

	qk, err := QueryKey(q)
	if err != nil {
		return leaderboard.Result{}, err
	}
	key := cache.Key(snap.Fingerprint, string(q.Mode), qk)

	if s.cache != nil {
		var cached leaderboard.Result
		err := s.cache.GetJSON(ctx, key, &cached)
		switch {
		case err == nil:
			s.log.WithField("key", key).Debug("cache hit")
			return cached, nil
		case !errors.Is(err, cache.ErrMiss):
			s.log.WithError(err).Warn("⚠️  cache read failed, computing")
		}
	}

	start := time.Now()
	result := leaderboard.Compute(snap.League, q)
	s.log.WithFields(logrus.Fields{
		"mode":     q.Mode,
		"rows":     result.Len(),
		"duration": time.Since(start),
	}).Debug("leaderboard computed")

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, result, s.ttl); err != nil {
			s.log.WithError(err).Warn("⚠️  cache write failed")
		}
	}

	return result, nil
}

// Invalidate drops every cached result computed for a fingerprint
func (s *LeaderboardService) Invalidate(ctx context.Context, fingerprint string) (int, error) {
	if s.cache == nil || fingerprint == "" {
		return 0, nil
	}
	n, err := s.cache.DeletePattern(ctx, cache.Key(fingerprint, "*"))
	if err != nil {
		return n, fmt.Errorf("invalidating %s: %w", fingerprint, err)
	}
	return n, nil
}

// Teams lists the season's teams in name order
func (s *LeaderboardService) Teams(ctx context.Context) ([]TeamSummary, error) {
	league, err := s.source.Load(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("loading league: %w", err)
	}

	teams := make([]TeamSummary, 0, len(league.Teams))
	for _, t := range league.Teams {
		teams = append(teams, TeamSummary{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			Wins:         t.Wins,
			Losses:       t.Losses,
			RosterSize:   len(t.Roster),
		})
	}
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })

	return teams, nil
}

// Metrics lists the keys that can be filtered or sorted on in a mode
func (s *LeaderboardService) Metrics(mode leaderboard.Mode) []leaderboard.Metric {
	return leaderboard.Metrics(mode)
}

// Fingerprint hashes the snapshot contents. Equal snapshots always produce
// equal fingerprints.
func Fingerprint(league leaderboard.League) (string, error) {
	data, err := json.Marshal(league)
	if err != nil {
		return "", fmt.Errorf("fingerprinting league: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// QueryKey hashes the normalized query. Queries that differ only in
// selection order, filter order, key aliases or search case share a key.
func QueryKey(q leaderboard.Query) (string, error) {
	norm := leaderboard.Query{
		Mode:   q.Mode,
		Search: strings.ToLower(strings.TrimSpace(q.Search)),
		Sort: leaderboard.SortSpec{
			Key:       leaderboard.CanonicalKey(q.Sort.Key),
			Direction: q.Sort.Direction,
		},
		SelectedTeams:     sortedCopy(q.SelectedTeams),
		SelectedPositions: sortedCopy(q.SelectedPositions),
	}
	for _, f := range q.Filters {
		f.Category = leaderboard.CanonicalKey(f.Category)
		norm.Filters = append(norm.Filters, f)
	}
	sort.Slice(norm.Filters, func(i, j int) bool {
		a, b := norm.Filters[i], norm.Filters[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Operator != b.Operator {
			return a.Operator < b.Operator
		}
		return a.Value < b.Value
	})

	data, err := json.Marshal(norm)
	if err != nil {
		return "", fmt.Errorf("encoding query: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

func sortedCopy(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
