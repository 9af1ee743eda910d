package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// WindowAggregator pages backward from the chain tip over a time window,
// serving cached blocks and enriching the rest.
type WindowAggregator struct {
	logger       *zap.Logger
	unit         model.Unit
	reader       ChainReader
	cache        BlockCache
	enricher     BlockEnricher
	metrics      WindowAggregatorMetrics
	now          func() time.Time
	defaultLimit uint64

	fetches  singleflight.Group
	enriches singleflight.Group
}

// NewWindowAggregator builds a WindowAggregator. A zero defaultLimit selects model.DefaultLimit.
func NewWindowAggregator(
	reader ChainReader,
	cache BlockCache,
	enricher BlockEnricher,
	metrics WindowAggregatorMetrics,
	unit model.Unit,
	defaultLimit uint64,
	logger *zap.Logger,
) (*WindowAggregator, error) {
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
		return nil, errors.New("window aggregator metrics is required")
	}
	if defaultLimit == 0 {
		defaultLimit = model.DefaultLimit
	}
	if defaultLimit > maxPageLimit {
		defaultLimit = maxPageLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WindowAggregator{
		logger:       logger.With(zap.String("unit", string(unit))).Named("window_aggregator"),
		unit:         unit,
		reader:       reader,
		cache:        cache,
		enricher:     enricher,
		metrics:      metrics,
		now:          time.Now,
		defaultLimit: defaultLimit,
	}, nil
}

// MaxLimit is the largest accepted page size.
func (a *WindowAggregator) MaxLimit() uint64 {
	return maxPageLimit
}

// DefaultLimit is the page size used when a request has none.
func (a *WindowAggregator) DefaultLimit() uint64 {
	return a.defaultLimit
}

// GetWindow returns one page of enriched blocks inside the time range,
// ascending by height. A page shorter than the limit is the last one.
func (a *WindowAggregator) GetWindow(ctx context.Context, req model.WindowRequest) (blocks []model.EnrichedBlock, err error) {
	started := time.Now()
	req = req.Normalize(a.defaultLimit)
	if req.Limit > maxPageLimit {
		req.Limit = maxPageLimit
	}
	defer func() {
		a.metrics.ObserveRequest(req.TimeRange, err, len(blocks), started)
	}()

	startTime := req.TimeRange.StartTime(a.now())

	tip, err := a.reader.BlockCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tip height: %w", err)
	}
	start, end := req.Heights(tip)

	blocks = make([]model.EnrichedBlock, 0, req.Limit)
	for height := start; height > end && height > 0; height-- {
		block, inWindow, resolveErr := a.resolve(ctx, height, startTime)
		if resolveErr != nil {
			return nil, resolveErr
		}
		if !inWindow {
			a.logger.Debug("reached window cutoff",
				zap.Uint64("height", height),
				zap.Int64("start_time", startTime),
			)
			break
		}
		blocks = append(blocks, block)
	}

	slices.Reverse(blocks)
	return blocks, nil
}

// resolve returns the enriched block at height and whether it is inside the window.
func (a *WindowAggregator) resolve(ctx context.Context, height uint64, startTime int64) (model.EnrichedBlock, bool, error) {
	hash, err := a.reader.BlockHash(ctx, height)
	if err != nil {
		return model.EnrichedBlock{}, false, fmt.Errorf("get block hash at height %d: %w", height, err)
	}

	cached, found, err := a.cache.Get(ctx, a.unit, hash)
	if err != nil {
		a.logger.Warn("cache get failed, treating as miss", zap.String("hash", hash), zap.Error(err))
		found = false
	}
	if found {
		a.metrics.ObserveBlock(true)
		return cached, cached.Time >= startTime, nil
	}

	raw, err := a.fetch(ctx, hash)
	if err != nil {
		return model.EnrichedBlock{}, false, err
	}
	if raw.Time < startTime {
		return model.EnrichedBlock{}, false, nil
	}

	enriched, err := a.enrich(ctx, raw)
	if err != nil {
		return model.EnrichedBlock{}, false, err
	}
	a.metrics.ObserveBlock(false)
	return enriched, true, nil
}

func (a *WindowAggregator) fetch(ctx context.Context, hash string) (model.Block, error) {
	v, err := shared(ctx, &a.fetches, hash, func(ctx context.Context) (any, error) {
		return a.enricher.Fetch(ctx, hash)
	})
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	return v.(model.Block), nil
}

// enrich builds the enriched block and writes it to the cache. Concurrent
// callers for the same hash share one enrichment.
func (a *WindowAggregator) enrich(ctx context.Context, raw model.Block) (model.EnrichedBlock, error) {
	v, err := shared(ctx, &a.enriches, raw.Hash, func(ctx context.Context) (any, error) {
		enriched, err := a.enricher.Enrich(ctx, raw)
		if err != nil {
			return nil, err
		}
		if putErr := a.cache.Put(ctx, a.unit, raw.Hash, enriched); putErr != nil {
			a.logger.Warn("cache put failed", zap.String("hash", raw.Hash), zap.Error(putErr))
		}
		return enriched, nil
	})
	if err != nil {
		return model.EnrichedBlock{}, fmt.Errorf("enrich block %s: %w", raw.Hash, err)
	}
	return v.(model.EnrichedBlock), nil
}

// shared runs fn once per key for all concurrent callers. fn is detached from
// the cancellation of whichever caller started it and bounded by
// sharedWorkTimeout; each caller stops waiting when its own ctx is done.
func shared(ctx context.Context, group *singleflight.Group, key string, fn func(context.Context) (any, error)) (any, error) {
	results := group.DoChan(key, func() (any, error) {
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedWorkTimeout)
		defer cancel()
		return fn(workCtx)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", model.ErrUnavailable, ctx.Err())
	case res := <-results:
		return res.Val, res.Err
	}
}
