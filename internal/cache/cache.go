package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/logging/types"
	"jobradar/pkg/models"
)

// SearchCache is a Redis-backed cache for per-provider search responses.
// It is strictly best-effort: a miss, a marshal error or an unreachable
// Redis all degrade to a pass-through, never to a caller-visible failure.
// Match results are never cached here.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger types.Logger
}

// NewSearchCache connects to Redis and verifies connectivity. Returns nil
// (cache disabled) when caching is turned off in the configuration.
func NewSearchCache(cfg *config.Config) (*SearchCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &SearchCache{
		client: client,
		ttl:    cfg.Cache.TTL,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Key builds the cache key for a provider/params pair
func Key(provider string, params models.SearchParams) string {
	data, _ := json.Marshal(params)
	sum := sha256.Sum256(data)
	return "jobradar:search:" + provider + ":" + hex.EncodeToString(sum[:16])
}

// Get returns the cached jobs for a provider/params pair, if present
func (c *SearchCache) Get(ctx context.Context, provider string, params models.SearchParams) ([]models.NormalizedJob, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, Key(provider, params)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("Cache read failed", map[string]interface{}{
				"provider": provider,
				"error":    err.Error(),
			})
		}
		return nil, false
	}

	var jobs []models.NormalizedJob
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, false
	}

	return jobs, true
}

// Set stores the jobs for a provider/params pair with the configured TTL
func (c *SearchCache) Set(ctx context.Context, provider string, params models.SearchParams, jobs []models.NormalizedJob) {
	if c == nil {
		return
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, Key(provider, params), data, c.ttl).Err(); err != nil {
		c.logger.Debug("Cache write failed", map[string]interface{}{
			"provider": provider,
			"error":    err.Error(),
		})
	}
}

// Close closes the underlying Redis connection
func (c *SearchCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
