package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by GetJSON when the key is absent
var ErrMiss = errors.New("cache miss")

// KeyPrefix namespaces every key this service writes
const KeyPrefix = "courtside:leaderboard:"

// Key builds a namespaced cache key from its parts
func Key(parts ...string) string {
	key := KeyPrefix
	for i, p := range parts {
		if i > 0 {
			key += ":"
		}
		key += p
	}
	return key
}

// RedisCache stores computed leaderboards keyed by snapshot and query
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// GetJSON decodes the value at key into dst
func (rc *RedisCache) GetJSON(ctx context.Context, key string, dst interface{}) error {
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("getting %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it with a TTL
func (rc *RedisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, data, ttl).Err()
}

// DeletePattern removes every key matching a glob pattern and returns the
// number removed
func (rc *RedisCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return removed, fmt.Errorf("scanning %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			n, err := rc.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("deleting keys: %w", err)
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}
