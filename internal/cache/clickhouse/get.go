package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

const getQuery = `
SELECT payload
FROM enriched_blocks FINAL
WHERE unit = ? AND hash = ?
LIMIT 1`

// Get returns the cached block for unit and hash.
func (r *Repository) Get(ctx context.Context, unit model.Unit, hash string) (block model.EnrichedBlock, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get", unit, err, start)
		if err == nil {
			r.metrics.ObserveLookup(unit, found)
		}
	}()

	var payload string
	err = r.conn.QueryRow(ctx, getQuery, string(unit), hash).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EnrichedBlock{}, false, nil
	}
	if err != nil {
		return model.EnrichedBlock{}, false, fmt.Errorf("%w: query enriched block %s: %w", model.ErrUnavailable, hash, err)
	}

	block, err = cache.Decode([]byte(payload))
	if err != nil {
		return model.EnrichedBlock{}, false, err
	}
	return block, true, nil
}
