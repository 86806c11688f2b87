// Package ratelimit counts requests per key in fixed time windows.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// Counter increments the counter of key for the window that contains now and
// returns the new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

func bucketKey(key string, window time.Duration, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, now.Unix()/int64(window.Seconds()))
}

// RedisCounter shares windows between instances.
type RedisCounter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client, now: time.Now}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := bucketKey(key, window, c.now())

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	return incr.Val(), nil
}

// memoryCounterCapacity bounds the number of live windows kept in memory.
const memoryCounterCapacity = 10000

// MemoryCounter is the single-instance fallback used when Redis is disabled. Windows
// are dropped once they are older than the window length given to NewMemoryCounter.
type MemoryCounter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, int64]
	now     func() time.Time
}

func NewMemoryCounter(window time.Duration) *MemoryCounter {
	return &MemoryCounter{
		buckets: expirable.NewLRU[string, int64](memoryCounterCapacity, nil, window+time.Second),
		now:     time.Now,
	}
}

func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	bk := bucketKey(key, window, c.now())

	c.mu.Lock()
	defer c.mu.Unlock()

	n, _ := c.buckets.Get(bk)
	n++
	c.buckets.Add(bk, n)
	return n, nil
}
