package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamClients = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stream",
		Name:      "clients",
		Help:      "Number of connected websocket subscribers.",
	}, []string{"unit"})
	streamMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stream",
		Name:      "messages_total",
		Help:      "Count of messages pushed to websocket subscribers.",
	}, []string{"unit", "status"})
	streamResubscribesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stream",
		Name:      "resubscribes_total",
		Help:      "Count of pub/sub resubscribe attempts.",
	}, []string{"unit"})
)

// Stream tracks metrics for the live new block stream.
type Stream struct {
	unit model.Unit
}

// NewStream constructs a Stream collector.
func NewStream(unit model.Unit) *Stream {
	if unit == "" {
		unit = "unknown"
	}
	return &Stream{unit: unit}
}

// ClientConnected increments the subscriber gauge.
func (m Stream) ClientConnected() {
	streamClients.WithLabelValues(string(m.unit)).Inc()
}

// ClientDisconnected decrements the subscriber gauge.
func (m Stream) ClientDisconnected() {
	streamClients.WithLabelValues(string(m.unit)).Dec()
}

// ObserveMessage counts a pushed message.
func (m Stream) ObserveMessage(err error) {
	streamMessagesTotal.WithLabelValues(string(m.unit), statusOf(err)).Inc()
}

// ObserveResubscribe counts a pub/sub resubscribe attempt.
func (m Stream) ObserveResubscribe() {
	streamResubscribesTotal.WithLabelValues(string(m.unit)).Inc()
}
