package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

const putQuery = `
INSERT INTO enriched_blocks (
	unit,
	hash,
	height,
	block_time,
	miner,
	price,
	payload
) VALUES (?, ?, ?, ?, ?, ?, ?)`

// Put stores block under unit and hash. Rows with the same key collapse on merge.
func (r *Repository) Put(ctx context.Context, unit model.Unit, hash string, block model.EnrichedBlock) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("put", unit, err, start)
	}()

	payload, err := cache.Encode(block)
	if err != nil {
		return err
	}

	if err = r.conn.Exec(ctx, putQuery,
		string(unit),
		hash,
		block.Height,
		time.Unix(block.Time, 0).UTC(),
		block.Miner,
		block.Price,
		string(payload),
	); err != nil {
		return fmt.Errorf("%w: insert enriched block %s: %w", model.ErrUnavailable, hash, err)
	}
	return nil
}
