package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	windowRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "window_aggregator",
		Name:      "requests_total",
		Help:      "Count of block window requests.",
	}, []string{"unit", "time_range", "status"})
	windowRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "window_aggregator",
		Name:      "request_duration_seconds",
		Help:      "Duration of block window requests.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"unit", "time_range", "status"})
	windowBlocksReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "window_aggregator",
		Name:      "blocks_returned",
		Help:      "Number of blocks returned per window request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"unit", "time_range"})
	windowBlockSourceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "window_aggregator",
		Name:      "blocks_total",
		Help:      "Count of walked blocks by source (cache or node).",
	}, []string{"unit", "source"})
)

// WindowAggregator tracks metrics for the windowed block aggregation.
type WindowAggregator struct {
	unit model.Unit
}

// NewWindowAggregator constructs a WindowAggregator collector.
func NewWindowAggregator(unit model.Unit) *WindowAggregator {
	if unit == "" {
		unit = "unknown"
	}
	return &WindowAggregator{unit: unit}
}

// ObserveRequest records a window request outcome, size and duration.
func (m WindowAggregator) ObserveRequest(timeRange model.TimeRange, err error, blocks int, started time.Time) {
	status := statusOf(err)
	windowRequestsTotal.WithLabelValues(string(m.unit), string(timeRange), status).Inc()
	windowRequestDuration.WithLabelValues(string(m.unit), string(timeRange), status).Observe(time.Since(started).Seconds())
	if err == nil {
		windowBlocksReturned.WithLabelValues(string(m.unit), string(timeRange)).Observe(float64(blocks))
	}
}

// ObserveBlock counts a walked block served from the cache or the node.
func (m WindowAggregator) ObserveBlock(cached bool) {
	source := "node"
	if cached {
		source = "cache"
	}
	windowBlockSourceTotal.WithLabelValues(string(m.unit), source).Inc()
}
