// Package transport delivers synthesized events to a broker.
//
// The Transport interface is the scheduler's only view of the broker: one
// Send per firing, fire-and-forget, safe under interleaved calls from
// multiple stream instances. Per-message delivery options (delivery mode,
// DMQ eligibility, TTL, application message ID, user properties including
// a derived partition key) travel alongside the payload.
//
// The NATS implementation maps "/"-separated topics onto "."-separated
// subjects and carries the options in message headers. Recorder is an
// in-memory implementation for tests.
package transport
