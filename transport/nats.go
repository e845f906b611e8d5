package transport

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/solacecommunity/feedstreams/natsclient"
)

// Header names carrying delivery options on NATS messages.
const (
	headerDeliveryMode = "Delivery-Mode"
	headerDMQEligible  = "DMQ-Eligible"
	headerTTL          = "TTL"
	headerMessageID    = "App-Message-ID"
	headerPropPrefix   = "Prop-"
)

// NATS publishes events to core NATS subjects. Topic strings use "/" as
// the level separator; NATS subjects use "."; SubjectFromTopic converts
// between the two. Delivery options ride in message headers.
type NATS struct {
	client *natsclient.Client
	logger *slog.Logger
}

// NATSOption configures a NATS transport.
type NATSOption func(*NATS)

// WithLogger sets the logger for send failures.
func WithLogger(logger *slog.Logger) NATSOption {
	return func(t *NATS) {
		t.logger = logger
	}
}

// NewNATS builds a transport over an established client.
func NewNATS(client *natsclient.Client, opts ...NATSOption) *NATS {
	t := &NATS{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SubjectFromTopic converts a "/"-separated topic into a NATS subject.
// Spaces inside topic segments are collapsed to underscores, since NATS
// subjects cannot contain whitespace.
func SubjectFromTopic(topic string) string {
	subject := strings.ReplaceAll(topic, "/", ".")
	return strings.ReplaceAll(subject, " ", "_")
}

// Send publishes one event. The publish is fire-and-forget: no broker
// acknowledgment is awaited.
func (t *NATS) Send(ctx context.Context, topic string, payload []byte, opts Options) error {
	msg := &nats.Msg{
		Subject: SubjectFromTopic(topic),
		Data:    payload,
		Header:  nats.Header{},
	}

	mode := opts.DeliveryMode
	if mode == "" {
		mode = DeliveryDirect
	}
	msg.Header.Set(headerDeliveryMode, mode)

	if opts.DMQEligible {
		msg.Header.Set(headerDMQEligible, "true")
	}
	if opts.TimeToLive > 0 {
		msg.Header.Set(headerTTL, strconv.FormatInt(opts.TimeToLive.Milliseconds(), 10))
	}
	if opts.ApplicationMessageID != "" {
		msg.Header.Set(headerMessageID, opts.ApplicationMessageID)
	}
	for key, value := range opts.UserProperties {
		msg.Header.Set(headerPropPrefix+key, value)
	}

	if err := t.client.PublishMsg(ctx, msg); err != nil {
		t.logger.Warn("publish failed",
			"subject", msg.Subject,
			"error", err)
		return err
	}

	return nil
}
