package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/workerpool"
	"go.uber.org/zap"
)

// WarmReport counts what a warm run did per height.
type WarmReport struct {
	Stored  int
	Cached  int
	Skipped int
}

// CacheWarmer pre-enriches the most recent blocks into the cache.
type CacheWarmer struct {
	logger   *zap.Logger
	unit     model.Unit
	reader   ChainReader
	cache    BlockCache
	enricher BlockEnricher
	metrics  CacheWarmerMetrics
	workers  int
	now      func() time.Time
}

// NewCacheWarmer builds a CacheWarmer. A non-positive workers selects the default.
func NewCacheWarmer(
	reader ChainReader,
	cache BlockCache,
	enricher BlockEnricher,
	metrics CacheWarmerMetrics,
	unit model.Unit,
	network model.Network,
	workers int,
	logger *zap.Logger,
) (*CacheWarmer, error) {
	if reader == nil {
		return nil, errors.New("chain reader is required")
	}
	if cache == nil {
		return nil, errors.New("block cache is required")
	}
	if enricher == nil {
		return nil, errors.New("block enricher is required")
	}
	if metrics == nil {
		return nil, errors.New("cache warmer metrics is required")
	}
	if workers <= 0 {
		workers = defaultWarmerWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(
		zap.String("unit", string(unit)),
		zap.String("network", string(network)),
	)

	return &CacheWarmer{
		logger:   logger.Named("cache_warmer"),
		unit:     unit,
		reader:   reader,
		cache:    cache,
		enricher: enricher,
		metrics:  metrics,
		workers:  workers,
		now:      time.Now,
	}, nil
}

// Warm enriches the depth most recent heights. With a non-empty timeRange,
// blocks older than the window are skipped.
func (w *CacheWarmer) Warm(ctx context.Context, depth uint64, timeRange model.TimeRange) (report WarmReport, err error) {
	started := time.Now()
	defer func() {
		w.metrics.ObserveRun(err, started)
	}()

	tip, err := w.reader.BlockCount(ctx)
	if err != nil {
		return WarmReport{}, fmt.Errorf("get tip height: %w", err)
	}
	heights := warmHeights(tip, depth)

	var startTime int64
	if timeRange != "" {
		startTime = timeRange.StartTime(w.now())
	}

	w.logger.Info("warming cache",
		zap.Uint64("tip", tip),
		zap.Int("heights", len(heights)),
		zap.String("time_range", string(timeRange)),
	)

	results, err := workerpool.Map(ctx, w.workers, heights, func(ctx context.Context, height uint64) (string, error) {
		return w.warmHeight(ctx, height, startTime)
	})
	if err != nil {
		return WarmReport{}, err
	}

	for _, result := range results {
		switch result {
		case metrics.WarmStored:
			report.Stored++
		case metrics.WarmCached:
			report.Cached++
		case metrics.WarmSkipped:
			report.Skipped++
		}
	}
	w.logger.Info("cache warmed",
		zap.Int("stored", report.Stored),
		zap.Int("cached", report.Cached),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

func (w *CacheWarmer) warmHeight(ctx context.Context, height uint64, startTime int64) (result string, err error) {
	started := time.Now()
	defer func() {
		if err != nil {
			result = metrics.WarmError
		}
		w.metrics.ObserveHeight(result, height, started)
	}()

	hash, err := w.reader.BlockHash(ctx, height)
	if err != nil {
		return "", fmt.Errorf("get block hash at height %d: %w", height, err)
	}

	if _, found, getErr := w.cache.Get(ctx, w.unit, hash); getErr != nil {
		w.logger.Warn("cache get failed, treating as miss", zap.Uint64("height", height), zap.Error(getErr))
	} else if found {
		return metrics.WarmCached, nil
	}

	raw, err := w.enricher.Fetch(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("get block %s: %w", hash, err)
	}
	if raw.Time < startTime {
		return metrics.WarmSkipped, nil
	}

	block, err := w.enricher.Enrich(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("enrich block %s: %w", hash, err)
	}
	if err = w.cache.Put(ctx, w.unit, hash, block); err != nil {
		return "", fmt.Errorf("store block %s: %w", hash, err)
	}
	return metrics.WarmStored, nil
}

// warmHeights lists the depth heights ending at tip, newest first. Genesis is excluded.
func warmHeights(tip, depth uint64) []uint64 {
	if depth > tip {
		depth = tip
	}
	heights := make([]uint64, 0, depth)
	for h := tip; h > tip-depth; h-- {
		heights = append(heights, h)
	}
	return heights
}
