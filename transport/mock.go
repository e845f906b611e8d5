package transport

import (
	"context"
	"sync"
)

// SentMessage records one Send call observed by the Recorder.
type SentMessage struct {
	Topic   string
	Payload []byte
	Options Options
}

// Recorder is a Transport for tests: it records every send and can be
// told to fail.
type Recorder struct {
	mu       sync.Mutex
	messages []SentMessage
	failWith error
}

// NewRecorder returns an empty recording transport.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes subsequent sends return err (nil restores success).
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

// Send records the message unless a failure is configured.
func (r *Recorder) Send(_ context.Context, topic string, payload []byte, opts Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}

	data := make([]byte, len(payload))
	copy(data, payload)
	r.messages = append(r.messages, SentMessage{Topic: topic, Payload: data, Options: opts})
	return nil
}

// Messages returns a snapshot of recorded sends.
func (r *Recorder) Messages() []SentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SentMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

// Count returns the number of recorded sends.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// Reset clears recorded sends.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
