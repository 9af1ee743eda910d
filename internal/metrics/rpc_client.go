// Package metrics holds the prometheus collectors of the dashboard components.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status labels.
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusNotFound    = "not_found"
	StatusUnavailable = "unavailable"
	StatusTimeout     = "timeout"
)

var (
	nodeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node",
		Name:      "calls_total",
		Help:      "Count of chain node calls by outcome.",
	}, []string{"operation", "unit", "network", "status"})
	nodeCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node",
		Name:      "call_duration_seconds",
		Help:      "Latency of chain node calls.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "unit", "network"})
)

// RPCClient records chain node calls for one unit and network.
type RPCClient struct {
	unit    string
	network string
}

// NewRPCClient constructs a node call collector.
func NewRPCClient(unit model.Unit, network model.Network) *RPCClient {
	return &RPCClient{unit: labelOr(string(unit)), network: labelOr(string(network))}
}

// Observe records a node call. Latency is recorded for every outcome; the
// counter separates missing data from an unreachable node.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	nodeCallsTotal.WithLabelValues(operation, m.unit, m.network, nodeStatus(err)).Inc()
	nodeCallDuration.WithLabelValues(operation, m.unit, m.network).Observe(time.Since(started).Seconds())
}

func nodeStatus(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, model.ErrNotFound):
		return StatusNotFound
	case errors.Is(err, model.ErrUnavailable):
		return StatusUnavailable
	default:
		return StatusError
	}
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

func labelOr(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
