// Package bitcoin reads blocks from a bitcoind-compatible node.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/safe"
)

// BtcToSatoshis converts a coin amount to its smallest unit with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// BuildBlock maps a verbose getblock result into a model.Block.
func BuildBlock(src btcjson.GetBlockVerboseResult) (model.Block, error) {
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s height overflow: %w", src.Hash, err)
	}
	size, err := safe.Uint32(src.Size)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d size overflow: %w", src.Height, err)
	}
	strippedSize, err := safe.Uint32(src.StrippedSize)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d stripped size overflow: %w", src.Height, err)
	}
	weight, err := safe.Uint32(src.Weight)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d weight overflow: %w", src.Height, err)
	}
	txCount, err := safe.Uint32(len(src.Tx))
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d tx count overflow: %w", src.Height, err)
	}

	return model.Block{
		Hash:         src.Hash,
		Height:       height,
		Time:         src.Time,
		Tx:           append([]string(nil), src.Tx...),
		TxCount:      txCount,
		Size:         size,
		StrippedSize: strippedSize,
		Weight:       weight,
		Version:      src.Version,
		MerkleRoot:   src.MerkleRoot,
		Nonce:        src.Nonce,
		Bits:         src.Bits,
		Difficulty:   src.Difficulty,
		PreviousHash: src.PreviousHash,
	}, nil
}

// BuildBlockStats maps a getblockstats result into model.BlockStats.
func BuildBlockStats(src btcjson.GetBlockStatsResult) model.BlockStats {
	stats := model.BlockStats{
		MinFeeRate:  src.MinFeeRate,
		MaxFeeRate:  src.MaxFeeRate,
		AvgFeeRate:  src.AverageFeeRate,
		MedianFee:   src.MedianFee,
		AvgFee:      src.AverageFee,
		TotalFee:    src.TotalFee,
		Subsidy:     src.Subsidy,
		TotalOut:    src.TotalOut,
		TotalSize:   src.TotalSize,
		TotalWeight: src.TotalWeight,
		Txs:         src.Txs,
		Ins:         src.Ins,
		Outs:        src.Outs,
	}
	copy(stats.FeeRatePercentiles[:], src.FeeratePercentiles)
	return stats
}

// BuildRawTransaction maps a verbose transaction into model.RawTransaction.
func BuildRawTransaction(tx btcjson.TxRawResult, decoder ScriptDecoder) (model.RawTransaction, error) {
	outputs := make([]model.TransactionOutput, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.RawTransaction{}, fmt.Errorf("tx %s output index overflow: %w", tx.Txid, err)
		}
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return model.RawTransaction{}, fmt.Errorf("tx %s output %d safe value: %w", tx.Txid, idx, err)
		}
		// An undecodable script only loses that output's addresses.
		addresses, decodeErr := decoder.DecodeAddresses(vout)
		if decodeErr != nil {
			addresses = nil
		}

		outputs = append(outputs, model.TransactionOutput{
			Index:      index,
			Value:      value,
			ScriptType: vout.ScriptPubKey.Type,
			ScriptHex:  vout.ScriptPubKey.Hex,
			Address:    vout.ScriptPubKey.Address,
			Addresses:  addresses,
		})
	}
	return model.RawTransaction{TxID: tx.Txid, Vout: outputs}, nil
}
