// Package natsclient provides a NATS client with circuit breaker protection
// and automatic reconnection for the FeedStreams event simulator.
//
// The package wraps the standard NATS Go client with reliability features:
// circuit breaker pattern for failure protection, exponential backoff between
// reconnection rounds, and health monitoring with RTT sampling. It is the
// transport foundation for all event publishing in FeedStreams.
//
// # Core Features
//
// Circuit Breaker Pattern: Prevents cascading failures by failing fast after a
// threshold of consecutive failures (default: 5). The circuit opens to block
// further attempts, then gradually tests the connection with exponential
// backoff capped at a configurable maximum (default: 1 minute).
//
// Connection Lifecycle Management: Handles connection states automatically
// through the lifecycle: Disconnected → Connecting → Connected → Reconnecting
// → Connected. The client manages all transitions with configurable callbacks
// for state changes.
//
// Fire-and-Forget Publishing: Publish and PublishMsg hand messages to the
// NATS client without waiting for broker acknowledgement. PublishMsg carries
// headers, which the transport layer uses for per-message delivery options.
//
// # Basic Usage
//
// Creating and connecting to NATS:
//
//	client, err := natsclient.NewClient("nats://localhost:4222")
//	if err != nil {
//	    return err
//	}
//
//	ctx := context.Background()
//	err = client.Connect(ctx)
//	if err != nil {
//	    return err
//	}
//	defer client.Close(ctx)
//
//	// Publish a message
//	err = client.Publish(ctx, "acme.orders.created", []byte(`{"id": "123"}`))
//
// # Advanced Configuration
//
// Creating client with options:
//
//	client, err := natsclient.NewClient("nats://localhost:4222",
//	    natsclient.WithMaxReconnects(-1),  // Infinite reconnects
//	    natsclient.WithReconnectWait(2*time.Second),
//	    natsclient.WithCircuitBreakerThreshold(10),
//	    natsclient.WithMetrics(registry),
//	    natsclient.WithDisconnectCallback(func(err error) {
//	        slog.Warn("NATS disconnected", "error", err)
//	    }),
//	)
//
// # Health Monitoring
//
// When connected, the client samples connection health on a configurable
// interval (default: 10s). Health changes invoke the registered callback, and
// when metrics are wired the connected gauge, RTT gauge, reconnect counter,
// and circuit breaker gauge are kept current.
//
// # Error Handling
//
// Publish paths return sentinel errors for fast-fail conditions:
//
//	err := client.Publish(ctx, subject, data)
//	switch {
//	case errors.Is(err, natsclient.ErrNotConnected):
//	    // connection not established yet
//	case errors.Is(err, natsclient.ErrCircuitOpen):
//	    // too many recent failures, wait for backoff
//	}
//
// Connection errors are classified as transient so callers can retry them
// with the retry package.
//
// # Thread Safety
//
// All client operations are safe for concurrent use. Status and circuit
// breaker state use atomic operations; the connection handle is guarded by a
// read-write mutex.
package natsclient
