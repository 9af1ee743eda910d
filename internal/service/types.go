package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainReader interface {
		BlockCount(ctx context.Context) (uint64, error)
		BestBlockHash(ctx context.Context) (string, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		Block(ctx context.Context, hash string) (model.Block, error)
		BlockStats(ctx context.Context, hash string) (model.BlockStats, error)
		RawTransaction(ctx context.Context, txid string, verbose bool, blockHash string) (model.RawTransaction, error)
	}
	PriceOracle interface {
		PriceAt(ctx context.Context, timestamp int64) float64
	}
	BlockCache interface {
		Get(ctx context.Context, unit model.Unit, hash string) (model.EnrichedBlock, bool, error)
		Put(ctx context.Context, unit model.Unit, hash string, block model.EnrichedBlock) error
	}
	BlockEnricher interface {
		Enrich(ctx context.Context, block model.Block) (model.EnrichedBlock, error)
		Fetch(ctx context.Context, hash string) (model.Block, error)
	}
	Publisher interface {
		Publish(ctx context.Context, block model.EnrichedBlock) error
	}

	WindowAggregatorMetrics interface {
		ObserveRequest(timeRange model.TimeRange, err error, blocks int, started time.Time)
		ObserveBlock(cached bool)
	}
	TipWatcherMetrics interface {
		ObserveTick(outcome string, started time.Time)
		SetTipHeight(height uint64)
	}
	CacheWarmerMetrics interface {
		ObserveRun(err error, started time.Time)
		ObserveHeight(result string, height uint64, started time.Time)
	}
)
