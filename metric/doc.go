// Package metric provides Prometheus-based metrics collection and an HTTP
// server for FeedStreams monitoring and observability.
//
// The package offers a centralized metrics registry managing both core
// platform metrics (event pipeline counters, stream gauges, NATS health) and
// custom component-specific metrics. It includes an HTTP server exposing
// metrics in Prometheus format.
//
// # Architecture
//
// The package follows a three-layer design:
//
//  1. Core Metrics: platform-level metrics automatically registered (Metrics type)
//  2. Component Registry: extensible registration for component-specific metrics (MetricsRegistrar interface)
//  3. HTTP Server: metrics endpoint with health checks (Server type)
//
// This separates infrastructure concerns (core metrics) from application
// concerns (component-specific metrics) while providing a unified metrics
// endpoint for monitoring systems.
//
// # Basic Usage
//
// Setting up metrics collection and HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        slog.Error("metrics server failed", "error", err)
//	    }
//	}()
//
//	// Record core platform metrics
//	coreMetrics := registry.CoreMetrics()
//	coreMetrics.RecordEventSynthesized("Order Created")
//	coreMetrics.RecordEventPublished("Order Created")
//	coreMetrics.RecordStreamsActive(3)
//
// The metrics server exposes Prometheus-formatted metrics at
// http://localhost:9090/metrics and a health check at
// http://localhost:9090/health.
//
// # Core Metrics
//
// The package automatically registers core platform metrics tracking:
//
//   - Event pipeline: events_synthesized_total, events_published_total,
//     publish_duration_seconds, publish_errors_total
//   - Stream scheduling: streams_active, streams_status (0=idle, 1=pending, 2=running)
//   - Content generation: generator_fallbacks_total
//   - NATS connectivity: nats_connected, nats_rtt_milliseconds,
//     nats_reconnects_total, nats_circuit_breaker
//
// # Component-Specific Metrics
//
// Components register custom metrics through the MetricsRegistrar interface:
//
//	counter := prometheus.NewCounter(prometheus.CounterOpts{
//	    Namespace: "feedstreams",
//	    Subsystem: "gateway",
//	    Name:      "clients_connected",
//	    Help:      "Number of connected WebSocket observers",
//	})
//	if err := registry.RegisterGauge("gateway", "clients_connected", gauge); err != nil {
//	    return err
//	}
//
// Duplicate registrations are rejected with a classified Invalid error, both
// at the registry's component.metric key level and at the Prometheus level.
//
// # Thread Safety
//
// All registry operations are safe for concurrent use. Metric updates rely on
// Prometheus's own atomic types.
package metric
