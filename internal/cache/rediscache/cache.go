// Package rediscache stores enriched blocks in Redis without expiry.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics records cache operations.
type Metrics interface {
	Observe(operation string, unit model.Unit, err error, started time.Time)
	ObserveLookup(unit model.Unit, hit bool)
}

// Cache is a Redis backed block cache.
type Cache struct {
	client  redis.Cmdable
	metrics Metrics
}

// New creates a Cache over an existing Redis client.
func New(client redis.Cmdable, metrics Metrics) (*Cache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	return &Cache{client: client, metrics: metrics}, nil
}

// Get returns the cached block for unit and hash.
func (c *Cache) Get(ctx context.Context, unit model.Unit, hash string) (block model.EnrichedBlock, found bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get", unit, err, started)
		if err == nil {
			c.metrics.ObserveLookup(unit, found)
		}
	}()

	data, err := c.client.Get(ctx, cache.Key(unit, hash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.EnrichedBlock{}, false, nil
	}
	if err != nil {
		return model.EnrichedBlock{}, false, fmt.Errorf("%w: redis get %s: %w", model.ErrUnavailable, hash, err)
	}

	block, err = cache.Decode(data)
	if err != nil {
		return model.EnrichedBlock{}, false, err
	}
	return block, true, nil
}

// Put stores block under unit and hash with no expiry.
func (c *Cache) Put(ctx context.Context, unit model.Unit, hash string, block model.EnrichedBlock) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("put", unit, err, started)
	}()

	data, err := cache.Encode(block)
	if err != nil {
		return err
	}
	if err = c.client.Set(ctx, cache.Key(unit, hash), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %w", model.ErrUnavailable, hash, err)
	}
	return nil
}
