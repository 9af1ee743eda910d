package bitcoin

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of *rpcclient.Client the reader relies on.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetBlockStats(hashOrHeight interface{}, stats *[]string) (*btcjson.GetBlockStatsResult, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RPC is the instrumented node API consumed by ChainReader.
	RPC interface {
		GetBlockCount() (int64, error)
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetBlockStats(blockHash *chainhash.Hash) (*btcjson.GetBlockStatsResult, error)
		GetRawTransactionVerbose(txid string, verbose bool, blockHash string) (*btcjson.TxRawResult, error)
	}

	// ScriptDecoder extracts addresses from an output script.
	ScriptDecoder interface {
		DecodeAddresses(vout btcjson.Vout) ([]string, error)
	}
)
