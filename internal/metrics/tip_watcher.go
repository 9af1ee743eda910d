package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tip watcher tick outcomes.
const (
	TickPublished  = "published"
	TickSuppressed = "suppressed"
	TickError      = "error"
)

var (
	tipTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "ticks_total",
		Help:      "Count of tip watcher ticks by outcome.",
	}, []string{"unit", "network", "outcome"})
	tipTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "tick_duration_seconds",
		Help:      "Duration of tip watcher ticks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"unit", "network", "outcome"})
	tipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "tip_height",
		Help:      "Height of the last published tip.",
	}, []string{"unit", "network"})
)

// TipWatcher tracks metrics for the new block watcher.
type TipWatcher struct {
	unit    model.Unit
	network model.Network
}

// NewTipWatcher constructs a TipWatcher collector.
func NewTipWatcher(unit model.Unit, network model.Network) *TipWatcher {
	if unit == "" {
		unit = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &TipWatcher{unit: unit, network: network}
}

// ObserveTick records one tick with its outcome.
func (m TipWatcher) ObserveTick(outcome string, started time.Time) {
	tipTicksTotal.WithLabelValues(string(m.unit), string(m.network), outcome).Inc()
	tipTickDuration.WithLabelValues(string(m.unit), string(m.network), outcome).Observe(time.Since(started).Seconds())
}

// SetTipHeight records the height of the last published block.
func (m TipWatcher) SetTipHeight(height uint64) {
	tipHeight.WithLabelValues(string(m.unit), string(m.network)).Set(float64(height))
}
