// Package eventlog keeps a rolling record of recently published events.
//
// Every active stream instance appends here after each firing. The log is
// capped (default 100 entries, oldest dropped first) and observable two
// ways: Snapshot returns the current contents oldest-first, and Subscribe
// delivers new entries to live observers. Subscribers are lossy displays;
// a slow observer misses entries rather than slowing publishers down.
package eventlog

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/solacecommunity/feedstreams/metric"
	"github.com/solacecommunity/feedstreams/pkg/buffer"
)

// DefaultCapacity bounds the log when no capacity is configured.
const DefaultCapacity = 100

// Entry is one published event as observers see it.
type Entry struct {
	EventName string          `json:"eventName"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	CountSend int             `json:"countSend"`
	TagColor  string          `json:"tagColor"`
}

// Log is a capped, observable event log. Safe for concurrent use by
// multiple stream instances.
type Log struct {
	buf    buffer.Buffer[Entry]
	logger *slog.Logger

	bufOpts []buffer.Option[Entry]

	mu          sync.Mutex
	subscribers map[int]chan Entry
	nextID      int
}

// Option configures a Log.
type Option func(*Log)

// WithLogger sets the logger for dropped-delivery debug messages.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// WithMetrics exports the backing buffer's utilisation as Prometheus
// metrics under the "eventlog" component label.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(l *Log) {
		l.bufOpts = append(l.bufOpts, buffer.WithMetrics[Entry](registry, "eventlog"))
	}
}

// New builds a log capped at the given capacity (DefaultCapacity when
// capacity is not positive).
func New(capacity int, opts ...Option) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	l := &Log{
		logger:      slog.Default(),
		subscribers: make(map[int]chan Entry),
	}
	for _, opt := range opts {
		opt(l)
	}

	// Fails only on duplicate metric registration, which is a wiring bug.
	buf, err := buffer.NewCircularBuffer[Entry](capacity, l.bufOpts...)
	if err != nil {
		panic(err)
	}
	l.buf = buf
	return l
}

// Append records one published event and fans it out to subscribers.
// When the log is full the oldest entry is dropped.
func (l *Log) Append(entry Entry) {
	_ = l.buf.Write(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, ch := range l.subscribers {
		select {
		case ch <- entry:
		default:
			l.logger.Debug("subscriber behind, dropping entry",
				"subscriber", id,
				"event", entry.EventName)
		}
	}
}

// Snapshot returns the current log contents, oldest first.
func (l *Log) Snapshot() []Entry {
	return l.buf.Items()
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return l.buf.Size()
}

// Clear discards all retained entries. Subscriptions are unaffected.
func (l *Log) Clear() {
	l.buf.Clear()
}

// Stats returns the backing buffer's counters (writes, drops, peak size).
func (l *Log) Stats() *buffer.Statistics {
	return l.buf.Stats()
}

// Subscribe registers an observer. The returned cancel function must be
// called to release the subscription; the channel is closed on cancel.
func (l *Log) Subscribe() (<-chan Entry, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++

	ch := make(chan Entry, 64)
	l.subscribers[id] = ch

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if sub, ok := l.subscribers[id]; ok {
			delete(l.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}
