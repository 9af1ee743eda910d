// Package model defines the domain models of the block dashboard pipeline.
package model

// UnknownMiner is reported when the coinbase output carries no address.
const UnknownMiner = "Unknown"

// Block is a raw block as reported by the node.
type Block struct {
	Hash         string   `json:"hash"`
	Height       uint64   `json:"height"`
	Time         int64    `json:"time"`
	Tx           []string `json:"tx"`
	TxCount      uint32   `json:"nTx"`
	Size         uint32   `json:"size"`
	StrippedSize uint32   `json:"strippedsize"`
	Weight       uint32   `json:"weight"`
	Version      int32    `json:"version"`
	MerkleRoot   string   `json:"merkleroot"`
	Nonce        uint32   `json:"nonce"`
	Bits         string   `json:"bits"`
	Difficulty   float64  `json:"difficulty"`
	PreviousHash string   `json:"previousblockhash,omitempty"`
}

// CoinbaseTxID returns the id of the first transaction of the block.
func (b Block) CoinbaseTxID() (string, bool) {
	if len(b.Tx) == 0 || b.Tx[0] == "" {
		return "", false
	}
	return b.Tx[0], true
}

// BlockStats holds per-block fee and value aggregates.
type BlockStats struct {
	MinFeeRate         int64    `json:"minfeerate"`
	MaxFeeRate         int64    `json:"maxfeerate"`
	AvgFeeRate         int64    `json:"avgfeerate"`
	MedianFee          int64    `json:"medianfee"`
	AvgFee             int64    `json:"avgfee"`
	TotalFee           int64    `json:"totalfee"`
	Subsidy            int64    `json:"subsidy"`
	TotalOut           int64    `json:"total_out"`
	TotalSize          int64    `json:"total_size"`
	TotalWeight        int64    `json:"total_weight"`
	Txs                int64    `json:"txs"`
	Ins                int64    `json:"ins"`
	Outs               int64    `json:"outs"`
	FeeRatePercentiles [5]int64 `json:"feerate_percentiles"`
}

// EnrichedBlock is a block with its stats, miner and fiat price at block time.
// It is the unit of caching and the unit returned to callers.
type EnrichedBlock struct {
	Block
	BlockStats
	Miner string  `json:"miner"`
	Price float64 `json:"price"`
}

// RawTransaction is a verbose transaction reduced to its outputs.
type RawTransaction struct {
	TxID string
	Vout []TransactionOutput
}

// TransactionOutput describes a single transaction output.
type TransactionOutput struct {
	Index      uint32
	Value      uint64
	ScriptType string
	ScriptHex  string
	Address    string
	Addresses  []string
}
