package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Price lookup statuses.
const (
	PriceStatusSuccess = "success"
	PriceStatusError   = "error"
	PriceStatusMissing = "missing"
)

var (
	priceLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "price_oracle",
		Name:      "lookups_total",
		Help:      "Count of historical price lookups.",
	}, []string{"unit", "currency", "status"})
	priceLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "price_oracle",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of historical price lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"unit", "currency", "status"})
)

// PriceOracle tracks metrics for historical price lookups.
type PriceOracle struct {
	unit     model.Unit
	currency string
}

// NewPriceOracle constructs a metrics collector for price lookups.
func NewPriceOracle(unit model.Unit, currency string) *PriceOracle {
	if unit == "" {
		unit = "unknown"
	}
	if currency == "" {
		currency = "unknown"
	}
	return &PriceOracle{unit: unit, currency: currency}
}

// ObserveLookup records a lookup with status success, error or missing.
func (m PriceOracle) ObserveLookup(status string, started time.Time) {
	priceLookupsTotal.WithLabelValues(string(m.unit), m.currency, status).Inc()
	priceLookupDuration.WithLabelValues(string(m.unit), m.currency, status).Observe(time.Since(started).Seconds())
}
