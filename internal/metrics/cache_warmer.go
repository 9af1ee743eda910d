package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	warmerRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "cache_warmer",
		Name:      "runs_total",
		Help:      "Count of cache warmer runs.",
	}, []string{"unit", "network", "status"})

	warmerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "cache_warmer",
		Name:      "run_duration_seconds",
		Help:      "Duration of cache warmer runs.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	}, []string{"unit", "network", "status"})

	warmerHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "cache_warmer",
		Name:      "heights_total",
		Help:      "Count of processed heights by result.",
	}, []string{"unit", "network", "result"})

	warmerHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "cache_warmer",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of processing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"unit", "network", "result"})
)

// Cache warmer height results.
const (
	WarmStored  = "stored"
	WarmCached  = "cached"
	WarmSkipped = "skipped"
	WarmError   = "error"
)

// CacheWarmer tracks metrics for the cache pre-fill job.
type CacheWarmer struct {
	unit    model.Unit
	network model.Network
}

// NewCacheWarmer constructs a CacheWarmer collector.
func NewCacheWarmer(unit model.Unit, network model.Network) *CacheWarmer {
	if unit == "" {
		unit = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &CacheWarmer{unit: unit, network: network}
}

// ObserveRun records a full warmer run.
func (m CacheWarmer) ObserveRun(err error, started time.Time) {
	status := statusOf(err)
	warmerRunTotal.WithLabelValues(string(m.unit), string(m.network), status).Inc()
	warmerRunDuration.WithLabelValues(string(m.unit), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveHeight records processing of a single height.
func (m CacheWarmer) ObserveHeight(result string, _ uint64, started time.Time) {
	warmerHeightsTotal.WithLabelValues(string(m.unit), string(m.network), result).Inc()
	warmerHeightDuration.WithLabelValues(string(m.unit), string(m.network), result).
		Observe(time.Since(started).Seconds())
}
