package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Enricher attaches stats, miner and price to raw blocks.
type Enricher struct {
	reader ChainReader
	oracle PriceOracle
	logger *zap.Logger
}

// NewEnricher builds an Enricher.
func NewEnricher(reader ChainReader, oracle PriceOracle, logger *zap.Logger) (*Enricher, error) {
	if reader == nil {
		return nil, errors.New("chain reader is required")
	}
	if oracle == nil {
		return nil, errors.New("price oracle is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{reader: reader, oracle: oracle, logger: logger.Named("enricher")}, nil
}

// Fetch returns the raw block for hash.
func (e *Enricher) Fetch(ctx context.Context, hash string) (model.Block, error) {
	return e.reader.Block(ctx, hash)
}

// Enrich builds the enriched view of block. It fails only when the block
// stats cannot be read; miner and price degrade to their sentinels.
func (e *Enricher) Enrich(ctx context.Context, block model.Block) (model.EnrichedBlock, error) {
	var (
		stats model.BlockStats
		miner string
		price float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = e.reader.BlockStats(gctx, block.Hash)
		if err != nil {
			return fmt.Errorf("get block stats %s: %w", block.Hash, err)
		}
		return nil
	})
	g.Go(func() error {
		miner = e.miner(gctx, block)
		return nil
	})
	g.Go(func() error {
		price = e.oracle.PriceAt(gctx, block.Time)
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.EnrichedBlock{}, err
	}

	return model.EnrichedBlock{
		Block:      block,
		BlockStats: stats,
		Miner:      miner,
		Price:      price,
	}, nil
}

func (e *Enricher) miner(ctx context.Context, block model.Block) string {
	txid, ok := block.CoinbaseTxID()
	if !ok {
		e.logger.Warn("block has no coinbase transaction", zap.String("hash", block.Hash))
		return model.UnknownMiner
	}
	tx, err := e.reader.RawTransaction(ctx, txid, true, block.Hash)
	if err != nil {
		e.logger.Warn("coinbase lookup failed",
			zap.String("hash", block.Hash),
			zap.String("txid", txid),
			zap.Error(err),
		)
		return model.UnknownMiner
	}
	return MinerFromCoinbase(tx)
}

// MinerFromCoinbase returns the address paid by the first coinbase output,
// or model.UnknownMiner when it carries none.
func MinerFromCoinbase(tx model.RawTransaction) string {
	if len(tx.Vout) == 0 {
		return model.UnknownMiner
	}
	out := tx.Vout[0]
	if out.Address != "" {
		return out.Address
	}
	if len(out.Addresses) > 0 && out.Addresses[0] != "" {
		return out.Addresses[0]
	}
	return model.UnknownMiner
}
