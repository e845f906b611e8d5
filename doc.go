// Package feedstreams is a headless event-feed simulator.
//
// FeedStreams loads declarative feed-rule files (a topic template with
// parameters, a payload schema annotated with generation rules, and
// publish-timing settings), synthesizes realistic events from them, and
// replays the events against a message broker on independently
// schedulable, rate-controlled publish loops.
//
// The pipeline is:
//
//	feed rules (JSON) -> synthesizer -> {topic, payload} -> transport -> broker
//	                                                    \-> event log -> gateway (WebSocket observers)
//
// Core packages:
//
//   - feed: feed-rule data model, loading and fail-fast validation
//   - generator: the content generator, a registry of (rule family,
//     rule name) pairs mapped to pure value generators with graceful
//     degradation for unknown rules
//   - synthesizer: builds one (topic, payload) pair per event from a
//     feed rule, applying payload-to-topic field mappings before
//     independent parameter generation
//   - scheduler: one timer-driven publish loop per event type with
//     start/stop/update operations and count-limited termination
//   - transport: the broker hand-off contract and its NATS
//     implementation
//   - eventlog: rolling in-memory log of published events
//   - gateway/ws: WebSocket fan-out of the event log to observers
//
// Supporting packages (config, errors, metric, natsclient, pkg/buffer,
// pkg/retry) provide configuration, classified error handling,
// Prometheus metrics, and the broker connection lifecycle.
package feedstreams
