// Package backend opens the configured block cache backend.
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache/memory"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache/rediscache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	Redis      = "redis"
	ClickHouse = "clickhouse"
	Memory     = "memory"
)

const pingTimeout = 5 * time.Second

// Cache is the block cache contract every backend implements.
type Cache interface {
	Get(ctx context.Context, unit model.Unit, hash string) (model.EnrichedBlock, bool, error)
	Put(ctx context.Context, unit model.Unit, hash string, block model.EnrichedBlock) error
}

// Config selects and configures a backend.
type Config struct {
	Backend       string
	ClickhouseDSN string
	// Redis is required for the redis backend.
	Redis redis.Cmdable
}

// Open returns the configured cache and a func releasing its resources.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (Cache, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() {}

	switch cfg.Backend {
	case Redis:
		c, err := rediscache.New(cfg.Redis, metrics.NewBlockCache(Redis))
		if err != nil {
			return nil, nil, fmt.Errorf("init redis cache: %w", err)
		}
		logger.Info("using redis block cache")
		return c, noop, nil

	case ClickHouse:
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewBlockCache(ClickHouse))
		if err != nil {
			return nil, nil, fmt.Errorf("init clickhouse cache: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			_ = repo.Close()
			return nil, nil, err
		}
		logger.Info("using clickhouse block cache")
		return repo, func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse cache", zap.Error(err))
			}
		}, nil

	case Memory:
		logger.Info("using in-memory block cache")
		return memory.New(metrics.NewBlockCache(Memory)), noop, nil

	case "":
		return nil, nil, errors.New("cache backend is required")
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
