// Package cache holds the storage layout shared by every block cache backend.
package cache

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

// Key returns the cache key of a block: "<unit>:<hash>".
func Key(unit model.Unit, hash string) string {
	return string(unit) + ":" + hash
}

// Encode serializes an enriched block into its stored form.
func Encode(block model.EnrichedBlock) ([]byte, error) {
	data, err := json.Marshal(block)
	if err != nil {
		return nil, fmt.Errorf("encode block %s: %w", block.Hash, err)
	}
	return data, nil
}

// Decode parses a stored enriched block.
func Decode(data []byte) (model.EnrichedBlock, error) {
	var block model.EnrichedBlock
	if err := json.Unmarshal(data, &block); err != nil {
		return model.EnrichedBlock{}, fmt.Errorf("decode cached block: %w", err)
	}
	return block, nil
}
