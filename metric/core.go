package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all platform-level metrics (not component-specific)
type Metrics struct {
	// Pipeline metrics
	EventsSynthesized  *prometheus.CounterVec
	EventsPublished    *prometheus.CounterVec
	PublishDuration    *prometheus.HistogramVec
	PublishErrors      *prometheus.CounterVec
	StreamsActive      prometheus.Gauge
	StreamStatus       *prometheus.GaugeVec
	GeneratorFallbacks *prometheus.CounterVec

	// NATS metrics
	NATSConnected      prometheus.Gauge
	NATSRTT            prometheus.Gauge
	NATSReconnects     prometheus.Counter
	NATSCircuitBreaker prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all platform metrics
func NewMetrics() *Metrics {
	return &Metrics{
		EventsSynthesized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feedstreams",
				Subsystem: "events",
				Name:      "synthesized_total",
				Help:      "Total number of events synthesized from feed rules",
			},
			[]string{"event"},
		),

		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feedstreams",
				Subsystem: "events",
				Name:      "published_total",
				Help:      "Total number of events published to the broker",
			},
			[]string{"event"},
		),

		PublishDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "feedstreams",
				Subsystem: "events",
				Name:      "publish_duration_seconds",
				Help:      "Time spent synthesizing and publishing one event",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"event"},
		),

		PublishErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feedstreams",
				Subsystem: "events",
				Name:      "publish_errors_total",
				Help:      "Total number of failed publish attempts",
			},
			[]string{"event", "type"},
		),

		StreamsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "feedstreams",
				Subsystem: "streams",
				Name:      "active",
				Help:      "Number of streams currently publishing",
			},
		),

		StreamStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "feedstreams",
				Subsystem: "streams",
				Name:      "status",
				Help:      "Per-stream status (0=idle, 1=pending, 2=running)",
			},
			[]string{"event"},
		),

		GeneratorFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feedstreams",
				Subsystem: "generator",
				Name:      "fallbacks_total",
				Help:      "Total number of unknown rules resolved to a family default",
			},
			[]string{"group"},
		),

		// NATS metrics
		NATSConnected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "feedstreams",
				Subsystem: "nats",
				Name:      "connected",
				Help:      "NATS connection status (0=disconnected, 1=connected)",
			},
		),

		NATSRTT: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "feedstreams",
				Subsystem: "nats",
				Name:      "rtt_milliseconds",
				Help:      "NATS round-trip time in milliseconds",
			},
		),

		NATSReconnects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "feedstreams",
				Subsystem: "nats",
				Name:      "reconnects_total",
				Help:      "Total number of NATS reconnections",
			},
		),

		NATSCircuitBreaker: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "feedstreams",
				Subsystem: "nats",
				Name:      "circuit_breaker",
				Help:      "NATS circuit breaker status (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

// RecordEventSynthesized increments the synthesized event counter
func (c *Metrics) RecordEventSynthesized(event string) {
	c.EventsSynthesized.WithLabelValues(event).Inc()
}

// RecordEventPublished increments the published event counter
func (c *Metrics) RecordEventPublished(event string) {
	c.EventsPublished.WithLabelValues(event).Inc()
}

// RecordPublishDuration records the time taken to synthesize and publish one event
func (c *Metrics) RecordPublishDuration(event string, duration time.Duration) {
	c.PublishDuration.WithLabelValues(event).Observe(duration.Seconds())
}

// RecordPublishError increments the publish error counter
func (c *Metrics) RecordPublishError(event, errorType string) {
	c.PublishErrors.WithLabelValues(event, errorType).Inc()
}

// RecordStreamsActive updates the active streams gauge
func (c *Metrics) RecordStreamsActive(count int) {
	c.StreamsActive.Set(float64(count))
}

// RecordStreamStatus updates a per-stream status gauge
func (c *Metrics) RecordStreamStatus(event string, status int) {
	c.StreamStatus.WithLabelValues(event).Set(float64(status))
}

// RecordGeneratorFallback increments the fallback counter for a rule group
func (c *Metrics) RecordGeneratorFallback(group string) {
	c.GeneratorFallbacks.WithLabelValues(group).Inc()
}

// RecordNATSStatus updates NATS connection status
func (c *Metrics) RecordNATSStatus(connected bool) {
	value := 0.0
	if connected {
		value = 1.0
	}
	c.NATSConnected.Set(value)
}

// RecordNATSRTT updates NATS round-trip time
func (c *Metrics) RecordNATSRTT(rtt time.Duration) {
	c.NATSRTT.Set(float64(rtt.Milliseconds()))
}

// RecordNATSReconnect increments reconnection counter
func (c *Metrics) RecordNATSReconnect() {
	c.NATSReconnects.Inc()
}

// RecordCircuitBreakerState updates circuit breaker status
func (c *Metrics) RecordCircuitBreakerState(state int) {
	c.NATSCircuitBreaker.Set(float64(state))
}
