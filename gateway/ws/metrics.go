package ws

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/solacecommunity/feedstreams/metric"
)

// Metrics holds Prometheus metrics for the WebSocket gateway.
type Metrics struct {
	clientsConnected   prometheus.Gauge
	connectionsTotal   prometheus.Counter
	disconnectionTotal *prometheus.CounterVec
	eventsSent         prometheus.Counter
	bytesSent          prometheus.Counter
	errorsTotal        *prometheus.CounterVec
}

// newMetrics creates and registers gateway metrics. A nil registry
// disables metrics.
func newMetrics(registry *metric.MetricsRegistry) *Metrics {
	if registry == nil {
		return nil
	}

	m := &Metrics{
		clientsConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "feedstreams",
			Subsystem: "gateway",
			Name:      "clients_connected",
			Help:      "Number of currently connected WebSocket clients",
		}),
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feedstreams",
			Subsystem: "gateway",
			Name:      "client_connections_total",
			Help:      "Total client connections (including disconnected)",
		}),
		disconnectionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feedstreams",
			Subsystem: "gateway",
			Name:      "client_disconnections_total",
			Help:      "Total client disconnections",
		}, []string{"disconnect_reason"}),
		eventsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feedstreams",
			Subsystem: "gateway",
			Name:      "events_sent_total",
			Help:      "Total event log entries sent to WebSocket clients",
		}),
		bytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feedstreams",
			Subsystem: "gateway",
			Name:      "bytes_sent_total",
			Help:      "Total bytes sent to WebSocket clients",
		}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feedstreams",
			Subsystem: "gateway",
			Name:      "errors_total",
			Help:      "WebSocket gateway errors",
		}, []string{"error_type"}),
	}

	registry.PrometheusRegistry().MustRegister(
		m.clientsConnected,
		m.connectionsTotal,
		m.disconnectionTotal,
		m.eventsSent,
		m.bytesSent,
		m.errorsTotal,
	)

	return m
}
