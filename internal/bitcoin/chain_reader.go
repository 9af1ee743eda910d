package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/safe"
)

const (
	// rpcInvalidAddressOrKey is returned for unknown blocks and transactions.
	rpcInvalidAddressOrKey = btcjson.RPCErrorCode(-5)
	// rpcInvalidParameter is returned for heights past the tip.
	rpcInvalidParameter = btcjson.RPCErrorCode(-8)
)

// DefaultCallTimeout bounds a single node call when the caller context has no deadline.
const DefaultCallTimeout = 30 * time.Second

// ChainReader exposes typed read-only node calls bound to the caller context.
type ChainReader struct {
	rpc         RPC
	decoder     ScriptDecoder
	callTimeout time.Duration
}

// NewChainReader creates a ChainReader over an instrumented RPC client.
func NewChainReader(rpc RPC, decoder ScriptDecoder, callTimeout time.Duration) (*ChainReader, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	if decoder == nil {
		return nil, errors.New("script decoder is required")
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &ChainReader{
		rpc:         rpc,
		decoder:     decoder,
		callTimeout: callTimeout,
	}, nil
}

// BlockCount returns the height of the chain tip.
func (r *ChainReader) BlockCount(ctx context.Context) (uint64, error) {
	count, err := callWithContext(ctx, r.callTimeout, r.rpc.GetBlockCount)
	if err != nil {
		return 0, classify("get block count", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// BestBlockHash returns the hash of the chain tip.
func (r *ChainReader) BestBlockHash(ctx context.Context) (string, error) {
	hash, err := callWithContext(ctx, r.callTimeout, r.rpc.GetBestBlockHash)
	if err != nil {
		return "", classify("get best block hash", err)
	}
	return hash.String(), nil
}

// BlockHash returns the hash of the block at height.
func (r *ChainReader) BlockHash(ctx context.Context, height uint64) (string, error) {
	if height > math.MaxInt64 {
		return "", fmt.Errorf("%w: block height %d exceeds rpc limit", model.ErrNotFound, height)
	}
	hash, err := callWithContext(ctx, r.callTimeout, func() (*chainhash.Hash, error) {
		return r.rpc.GetBlockHash(int64(height))
	})
	if err != nil {
		return "", classify(fmt.Sprintf("get block hash at height %d", height), err)
	}
	return hash.String(), nil
}

// Block returns the block header and txids for hash.
func (r *ChainReader) Block(ctx context.Context, hash string) (model.Block, error) {
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("%w: parse block hash %q: %w", model.ErrNotFound, hash, err)
	}
	src, err := callWithContext(ctx, r.callTimeout, func() (*btcjson.GetBlockVerboseResult, error) {
		return r.rpc.GetBlockVerbose(blockHash)
	})
	if err != nil {
		return model.Block{}, classify(fmt.Sprintf("get block %s", hash), err)
	}
	return BuildBlock(*src)
}

// BlockStats returns the fee and value aggregates for hash.
func (r *ChainReader) BlockStats(ctx context.Context, hash string) (model.BlockStats, error) {
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return model.BlockStats{}, fmt.Errorf("%w: parse block hash %q: %w", model.ErrNotFound, hash, err)
	}
	src, err := callWithContext(ctx, r.callTimeout, func() (*btcjson.GetBlockStatsResult, error) {
		return r.rpc.GetBlockStats(blockHash)
	})
	if err != nil {
		return model.BlockStats{}, classify(fmt.Sprintf("get block stats %s", hash), err)
	}
	return BuildBlockStats(*src), nil
}

// RawTransaction returns the transaction outputs of txid. A non-empty
// blockHash lets nodes without txindex resolve the transaction.
func (r *ChainReader) RawTransaction(ctx context.Context, txid string, verbose bool, blockHash string) (model.RawTransaction, error) {
	src, err := callWithContext(ctx, r.callTimeout, func() (*btcjson.TxRawResult, error) {
		return r.rpc.GetRawTransactionVerbose(txid, verbose, blockHash)
	})
	if err != nil {
		return model.RawTransaction{}, classify(fmt.Sprintf("get raw transaction %s", txid), err)
	}
	return BuildRawTransaction(*src, r.decoder)
}

// callWithContext runs a blocking node call and gives up when ctx is done.
// The abandoned call finishes in the background and its result is dropped.
func callWithContext[T any](ctx context.Context, timeout time.Duration, call func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := call()
		done <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-done:
		return res.value, res.err
	}
}

// classify maps node and transport failures onto the model sentinels.
func classify(op string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		switch rpcErr.Code {
		case rpcInvalidAddressOrKey, rpcInvalidParameter:
			return fmt.Errorf("%w: %s: %w", model.ErrNotFound, op, err)
		default:
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", model.ErrUnavailable, op, err)
}
