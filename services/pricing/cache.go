package pricing

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"brightnest/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const quoteCachePrefix = "quote:"

// QuoteCache is the read-through cache the calculator consults for
// surcharge-free quotes. Implementations absorb backend failures: a failed
// read is a miss and a failed write is dropped, so the calculator never
// depends on the cache being up.
type QuoteCache interface {
	Get(ctx context.Context, key string) (*models.PricingResult, bool)
	Set(ctx context.Context, key string, result *models.PricingResult)
}

// RedisQuoteCache implements QuoteCache on a Redis client.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisQuoteCache creates a quote cache with a fixed TTL.
func NewRedisQuoteCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisQuoteCache) Get(ctx context.Context, key string) (*models.PricingResult, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("quote cache read failed, treating as miss", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	var result models.PricingResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		c.logger.Warn("quote cache entry unreadable, treating as miss", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &result, true
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, result *models.PricingResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("failed to marshal quote for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("quote cache write failed, dropping", zap.String("key", key), zap.Error(err))
	}
}

// cacheKey builds the quote cache key from size, frequency, and the sorted
// names of the active addons. Surcharge flags are deliberately excluded:
// surcharged quotes are never cached.
func cacheKey(req models.PricingRequest) string {
	active := make([]string, 0, len(req.Addons))
	for name, on := range req.Addons {
		if on {
			active = append(active, name)
		}
	}
	sort.Strings(active)
	return quoteCachePrefix + string(req.Size) + ":" + string(req.Frequency) + ":" + strings.Join(active, ",")
}
