// Package buffer provides thread-safe circular buffers with configurable overflow policies,
// built-in statistics tracking, and optional Prometheus metrics integration.
//
// # Overview
//
// The buffer package implements generic circular buffers for bounded
// retention of recent items. The primary consumer is the rolling event log,
// which keeps the last N published events with a DropOldest policy.
//
// # Quick Start
//
// Basic buffer creation:
//
//	buf, err := buffer.NewCircularBuffer[int](100)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Write data
//	err = buf.Write(42)
//
//	// Read data
//	value, ok := buf.Read()
//
// With overflow policy and metrics:
//
//	buf, err := buffer.NewCircularBuffer[Entry](100,
//		buffer.WithOverflowPolicy[Entry](buffer.DropOldest),
//		buffer.WithMetrics[Entry](registry, "eventlog"),
//	)
//
// # Overflow Policies
//
// The buffer supports two overflow behaviors when capacity is reached:
//
//   - DropOldest: Remove oldest item to make room (default; what a rolling log wants)
//   - DropNewest: Reject new items when full
//
// A DropCallback can observe evicted items:
//
//	buf, _ := buffer.NewCircularBuffer[Entry](100,
//		buffer.WithDropCallback[Entry](func(e Entry) {
//			slog.Debug("evicted log entry", "topic", e.Topic)
//		}),
//	)
//
// # Snapshots
//
// Items() returns the current contents oldest-first without consuming them.
// This backs the event log's Snapshot operation, where observers need the
// recent history while the buffer keeps accumulating.
//
// # Observability
//
// The buffer package implements a dual-tracking pattern:
//
// Statistics (Always On):
//   - Tracks all operations using atomic counters
//   - Zero configuration required
//   - Available via buf.Stats()
//   - Provides computed metrics (throughput, drop rate, utilization)
//   - No external dependencies
//
// Prometheus Metrics (Optional):
//   - Enabled via WithMetrics() option
//   - Exports to Prometheus for time-series monitoring
//   - Includes component labels for instance identification
//   - Standard metric types (Counter, Gauge)
//
// Statistics work without Prometheus so tests and local debugging get
// observability for free; Prometheus metrics layer on top when a registry
// is available. Registration errors surface from the constructor rather
// than being silently dropped.
//
// # API Design Patterns
//
// The package uses functional options for composable configuration:
//
//	buf, _ := buffer.NewCircularBuffer[T](capacity,
//		buffer.WithOverflowPolicy[T](policy),
//		buffer.WithMetrics[T](registry, prefix),
//		buffer.WithDropCallback[T](callback),
//	)
//
// Buffers are fully generic and work with any Go type.
//
// # Performance Characteristics
//
// Operations:
//   - Write: O(1) constant time
//   - Read: O(1) constant time
//   - ReadBatch: O(n) where n is batch size
//   - Items: O(n) snapshot copy
//   - Peek/Size/IsFull/IsEmpty: O(1) constant time
//
// Memory is a pre-allocated circular array; no dynamic allocations during
// steady-state operation.
//
// # Thread Safety
//
// All buffer operations are thread-safe for concurrent use:
//   - Multiple producers can write concurrently
//   - Multiple consumers can read concurrently
//   - Statistics use atomic operations (lock-free)
//   - Internal state protected by sync.RWMutex
//   - Drop callbacks run outside the buffer lock
package buffer
