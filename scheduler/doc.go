// Package scheduler drives the timer loops that turn feed rules into a
// live event stream.
//
// Each feed rule gets one stream instance. An instance is Idle until
// started, Pending while its start delay runs down, and Running while its
// ticker fires. Every firing synthesizes a fresh event, publishes it over
// the configured transport, appends it to the event log, and updates the
// metrics gauges. A failed firing is logged and skipped; the loop keeps
// going.
//
// The publish period comes from a rate and a frequency unit (msg/s,
// msg/m, msg/h). Rates above one divide the unit span, rates at or below
// one multiply it.
//
// Rate and delay changes stop an active instance first; the new settings
// apply on the next start. The message count limit and TTL change in
// place. When an instance's sent count reaches its limit it stops itself,
// exactly as if Stop had been called.
//
// All state transitions hold one mutex, so concurrent Start, Stop, and
// update calls interleave safely with in-flight firings. Stale firings
// are fenced by a per-instance generation counter: once Stop returns, no
// further events from the old run reach the transport.
package scheduler
