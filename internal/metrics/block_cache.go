package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockCacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_cache",
		Name:      "operations_total",
		Help:      "Count of block cache operations.",
	}, []string{"backend", "operation", "unit", "status"})
	blockCacheRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_cache",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block cache operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"backend", "operation", "unit", "status"})
	blockCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_cache",
		Name:      "lookups_total",
		Help:      "Count of block cache lookups by result.",
	}, []string{"backend", "unit", "result"})
)

// BlockCache tracks metrics for a block cache backend.
type BlockCache struct {
	backend string
}

// NewBlockCache creates a BlockCache metrics collector for the named backend.
func NewBlockCache(backend string) *BlockCache {
	if backend == "" {
		backend = "unknown"
	}
	return &BlockCache{backend: backend}
}

// Observe records duration and status of a cache operation.
func (m BlockCache) Observe(operation string, unit model.Unit, err error, started time.Time) {
	if unit == "" {
		unit = "unknown"
	}
	status := statusOf(err)
	blockCacheRequestsTotal.WithLabelValues(m.backend, operation, string(unit), status).Inc()
	blockCacheRequestDuration.WithLabelValues(m.backend, operation, string(unit), status).Observe(time.Since(started).Seconds())
}

// ObserveLookup counts a cache hit or miss.
func (m BlockCache) ObserveLookup(unit model.Unit, hit bool) {
	if unit == "" {
		unit = "unknown"
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	blockCacheLookupsTotal.WithLabelValues(m.backend, string(unit), result).Inc()
}
