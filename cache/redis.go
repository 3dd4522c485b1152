package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// scanBatch is the COUNT hint for SCAN when enumerating keys.
const scanBatch = 100

// RedisCache is a Redis-backed cache shared between server instances.
type RedisCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
}

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL       string        // Redis connection URL (e.g., "redis://localhost:6379")
	TTL       time.Duration // Entry lifetime (0 = no expiration)
	KeyPrefix string        // Prefix for all keys (default: "alltools:")
	Logger    *zap.Logger   // Receives backend errors that are reported as misses
}

// NewRedisCache creates a new Redis cache with the given configuration and
// verifies the connection.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &Error{Op: "parse url", Cause: err}
	}

	c := NewRedisCacheFromClient(redis.NewClient(opts), cfg.TTL, cfg.KeyPrefix)
	if cfg.Logger != nil {
		c.logger = cfg.Logger
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		_ = c.client.Close()
		return nil, err
	}

	return c, nil
}

// NewRedisCacheFromClient creates a RedisCache from an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	if ttl < 0 {
		ttl = 0
	}

	return &RedisCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
		logger:    zap.NewNop(),
	}
}

// Get retrieves a value from Redis. Backend errors are logged and reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return val, true
}

// Set stores a value in Redis.
func (c *RedisCache) Set(ctx context.Context, key string, value string) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, c.ttl).Err(); err != nil {
		return &Error{Op: "set", Key: key, Cause: err}
	}
	return nil
}

// Entries scans every key under the prefix and returns the live entries with the
// prefix stripped.
func (c *RedisCache) Entries(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)
	var cursor uint64

	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, &Error{Op: "scan", Cause: err}
		}

		for _, full := range keys {
			val, err := c.client.Get(ctx, full).Result()
			if errors.Is(err, redis.Nil) {
				continue // expired between SCAN and GET
			}
			if err != nil {
				return nil, &Error{Op: "get", Key: full, Cause: err}
			}
			result[strings.TrimPrefix(full, c.keyPrefix)] = val
		}

		if next == 0 {
			return result, nil
		}
		cursor = next
	}
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return &Error{Op: "ping", Cause: err}
	}
	return nil
}

var _ Enumerable = (*RedisCache)(nil)
