// Package memory keeps enriched blocks in process memory.
package memory

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/puzpuzpuz/xsync/v4"
)

// Metrics records cache operations.
type Metrics interface {
	Observe(operation string, unit model.Unit, err error, started time.Time)
	ObserveLookup(unit model.Unit, hit bool)
}

// Cache is an unbounded in-process block cache. Entries are stored encoded,
// so reads return copies that callers may mutate freely.
type Cache struct {
	entries *xsync.Map[string, []byte]
	metrics Metrics
}

// New creates an empty Cache. A nil metrics collector disables metrics.
func New(metrics Metrics) *Cache {
	return &Cache{
		entries: xsync.NewMap[string, []byte](),
		metrics: metrics,
	}
}

// Get returns the cached block for unit and hash.
func (c *Cache) Get(ctx context.Context, unit model.Unit, hash string) (block model.EnrichedBlock, found bool, err error) {
	started := time.Now()
	defer func() {
		c.observe("get", unit, err, started)
		if err == nil && c.metrics != nil {
			c.metrics.ObserveLookup(unit, found)
		}
	}()

	if err = ctx.Err(); err != nil {
		return model.EnrichedBlock{}, false, err
	}
	data, ok := c.entries.Load(cache.Key(unit, hash))
	if !ok {
		return model.EnrichedBlock{}, false, nil
	}
	block, err = cache.Decode(data)
	if err != nil {
		return model.EnrichedBlock{}, false, err
	}
	return block, true, nil
}

// Put stores block under unit and hash.
func (c *Cache) Put(ctx context.Context, unit model.Unit, hash string, block model.EnrichedBlock) (err error) {
	started := time.Now()
	defer func() {
		c.observe("put", unit, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	data, err := cache.Encode(block)
	if err != nil {
		return err
	}
	c.entries.Store(cache.Key(unit, hash), data)
	return nil
}

// Len returns the number of cached blocks.
func (c *Cache) Len() int {
	return c.entries.Size()
}

func (c *Cache) observe(operation string, unit model.Unit, err error, started time.Time) {
	if c.metrics != nil {
		c.metrics.Observe(operation, unit, err, started)
	}
}
