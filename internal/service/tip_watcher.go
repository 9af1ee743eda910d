package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

const (
	tipStateIdle     = "idle"
	tipStateWatching = "watching"
	tipEventObserve  = "observe"
)

// TipWatcher polls the chain tip and publishes each new best block once.
type TipWatcher struct {
	logger      *zap.Logger
	unit        model.Unit
	reader      ChainReader
	enricher    BlockEnricher
	cache       BlockCache
	publisher   Publisher
	metrics     TipWatcherMetrics
	sleep       func(context.Context, time.Duration) error
	interval    time.Duration
	blockSignal <-chan struct{}

	state         *fsm.FSM
	lastBlockHash string
}

// NewTipWatcher builds a TipWatcher. blockSignal is optional and wakes the
// watcher before the interval elapses.
func NewTipWatcher(
	reader ChainReader,
	enricher BlockEnricher,
	cache BlockCache,
	publisher Publisher,
	metrics TipWatcherMetrics,
	unit model.Unit,
	network model.Network,
	interval time.Duration,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*TipWatcher, error) {
	if reader == nil {
		return nil, errors.New("chain reader is required")
	}
	if enricher == nil {
		return nil, errors.New("block enricher is required")
	}
	if publisher == nil {
		return nil, errors.New("publisher is required")
	}
	if metrics == nil {
		return nil, errors.New("tip watcher metrics is required")
	}
	if interval <= 0 {
		interval = defaultTipInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(
		zap.String("unit", string(unit)),
		zap.String("network", string(network)),
	)

	return &TipWatcher{
		logger:      logger.Named("tip_watcher"),
		unit:        unit,
		reader:      reader,
		enricher:    enricher,
		cache:       cache,
		publisher:   publisher,
		metrics:     metrics,
		sleep:       clock.SleepWithContext,
		interval:    interval,
		blockSignal: blockSignal,
		state: fsm.NewFSM(
			tipStateIdle,
			fsm.Events{
				{
					Name: tipEventObserve,
					Src:  []string{tipStateIdle},
					Dst:  tipStateWatching,
				},
			},
			fsm.Callbacks{},
		),
	}, nil
}

// Run ticks immediately and then every interval until ctx is canceled.
// Tick failures are logged and retried on the next tick.
func (w *TipWatcher) Run(ctx context.Context) error {
	w.logger.Info("tip watcher started", zap.Duration("interval", w.interval))
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("tick failed", zap.Error(err))
		}
		if err := w.wait(ctx, w.interval); err != nil {
			return err
		}
	}
}

// Tick checks the best block once and publishes it when it changed.
func (w *TipWatcher) Tick(ctx context.Context) (err error) {
	started := time.Now()
	outcome := metrics.TickPublished
	defer func() {
		if err != nil {
			outcome = metrics.TickError
		}
		w.metrics.ObserveTick(outcome, started)
	}()

	hash, err := w.reader.BestBlockHash(ctx)
	if err != nil {
		return fmt.Errorf("get best block hash: %w", err)
	}
	if w.state.Is(tipStateWatching) && hash == w.lastBlockHash {
		outcome = metrics.TickSuppressed
		return nil
	}

	raw, err := w.enricher.Fetch(ctx, hash)
	if err != nil {
		return fmt.Errorf("get block %s: %w", hash, err)
	}
	block, err := w.enricher.Enrich(ctx, raw)
	if err != nil {
		return fmt.Errorf("enrich block %s: %w", hash, err)
	}

	if w.cache != nil {
		if putErr := w.cache.Put(ctx, w.unit, hash, block); putErr != nil {
			w.logger.Warn("cache put failed", zap.String("hash", hash), zap.Error(putErr))
		}
	}

	if err = w.publisher.Publish(ctx, block); err != nil {
		return fmt.Errorf("publish block %s: %w", hash, err)
	}

	w.lastBlockHash = hash
	if w.state.Can(tipEventObserve) {
		if err = w.state.Event(ctx, tipEventObserve); err != nil {
			return fmt.Errorf("transition to %s: %w", tipStateWatching, err)
		}
	}
	w.metrics.SetTipHeight(block.Height)
	w.logger.Info("new block published", zap.String("hash", hash), zap.Uint64("height", block.Height))
	return nil
}

// LastBlockHash returns the hash of the last published block.
func (w *TipWatcher) LastBlockHash() string {
	return w.lastBlockHash
}

// State returns the current watcher state.
func (w *TipWatcher) State() string {
	return w.state.Current()
}

func (w *TipWatcher) wait(ctx context.Context, d time.Duration) error {
	if w.blockSignal == nil {
		return w.sleep(ctx, d)
	}
	return clock.WaitWithSignal(ctx, d, w.blockSignal)
}
