// Package ws exposes the event stream to dashboards over WebSocket.
//
// Each connecting client receives three kinds of envelope-wrapped
// messages: a hello with the loaded feeds and current stream instances,
// a snapshot of the recent event log, and then one event message per
// live firing. The subscription is taken before the snapshot so no
// entry falls between them; a client may see an entry twice across that
// boundary, which is harmless for a display.
//
// Slow clients lose events rather than slowing publishers down; the
// underlying event log subscription drops entries when a client's
// buffer is full. Connection health is maintained with pings, and a
// client that stops responding is disconnected.
package ws
