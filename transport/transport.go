package transport

import (
	"context"
	"time"
)

// Delivery modes carried on outgoing messages.
const (
	DeliveryDirect     = "direct"
	DeliveryPersistent = "persistent"
)

// PartitionKeyProperty is the user property carrying a derived partition
// key, so partition-aware consumers can group related events.
const PartitionKeyProperty = "partitionKey"

// Options are the per-message delivery options a firing attaches to a send.
type Options struct {
	DeliveryMode         string
	DMQEligible          bool
	TimeToLive           time.Duration
	ApplicationMessageID string
	UserProperties       map[string]string
}

// Transport delivers synthesized events to a broker. Send is
// fire-and-forget from the scheduler's perspective: failures surface
// through the returned error for accounting but are never retried by the
// caller, and implementations must be safe under interleaved sends from
// multiple stream instances.
type Transport interface {
	Send(ctx context.Context, topic string, payload []byte, opts Options) error
}
