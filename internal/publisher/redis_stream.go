package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LeaderboardStream receives one entry per snapshot change
const LeaderboardStream = "leaderboard.updated.basketball_nba"

// LeaderboardUpdated is the payload published when the league snapshot
// fingerprint changes
type LeaderboardUpdated struct {
	EventID     string    `json:"event_id"`
	Season      string    `json:"season"`
	Fingerprint string    `json:"fingerprint"`
	Previous    string    `json:"previous,omitempty"`
	Teams       int       `json:"teams"`
	Players     int       `json:"players"`
	GamesPlayed int       `json:"games_played"`
	Invalidated int       `json:"invalidated"`
	ComputedAt  time.Time `json:"computed_at"`
}

// RedisStreamPublisher publishes events to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
	maxLen int64
}

// NewRedisStreamPublisher creates a publisher from an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, maxLen: 1000}
}

// PublishLeaderboardUpdated appends an update event to LeaderboardStream
func (p *RedisStreamPublisher) PublishLeaderboardUpdated(ctx context.Context, event LeaderboardUpdated) error {
	values, err := streamValues(event)
	if err != nil {
		return err
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: LeaderboardStream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", LeaderboardStream, err)
	}
	return nil
}

func streamValues(event LeaderboardUpdated) (map[string]interface{}, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encoding event: %w", err)
	}
	return map[string]interface{}{
		"data":      string(data),
		"timestamp": event.ComputedAt.Unix(),
	}, nil
}
