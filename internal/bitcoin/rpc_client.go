package bitcoin

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RPCClient wraps btc rpcclient with metrics instrumentation.
type RPCClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client NodeClient, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the latest block count.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBestBlockHash returns the hash of the chain tip.
func (r *RPCClient) GetBestBlockHash() (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_best_block_hash", err, started)
	}()
	return r.client.GetBestBlockHash()
}

// GetBlockHash returns the block hash for a height.
func (r *RPCClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerbose returns a block header with its transaction ids.
func (r *RPCClient) GetBlockVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	return r.client.GetBlockVerbose(blockHash)
}

// GetBlockStats returns fee and value aggregates of a block.
func (r *RPCClient) GetBlockStats(blockHash *chainhash.Hash) (res *btcjson.GetBlockStatsResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_stats", err, started)
	}()
	return r.client.GetBlockStats(blockHash, nil)
}

// GetRawTransactionVerbose looks up a transaction, optionally inside a known block.
// The block hash lets nodes without txindex serve the coinbase transaction.
func (r *RPCClient) GetRawTransactionVerbose(txid string, verbose bool, blockHash string) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()

	args := []any{txid, verbose}
	if blockHash != "" {
		args = append(args, blockHash)
	}
	params := make([]json.RawMessage, 0, len(args))
	for _, arg := range args {
		raw, marshalErr := json.Marshal(arg)
		if marshalErr != nil {
			return nil, fmt.Errorf("marshal getrawtransaction param: %w", marshalErr)
		}
		params = append(params, raw)
	}

	raw, err := r.client.RawRequest("getrawtransaction", params)
	if err != nil {
		return nil, err
	}
	var tx btcjson.TxRawResult
	if err = json.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("decode getrawtransaction result: %w", err)
	}
	return &tx, nil
}
