package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/feedstreams/errors"
	"github.com/solacecommunity/feedstreams/eventlog"
	"github.com/solacecommunity/feedstreams/feed"
	"github.com/solacecommunity/feedstreams/metric"
	"github.com/solacecommunity/feedstreams/synthesizer"
	"github.com/solacecommunity/feedstreams/transport"
)

// appMessageIDUUID requests a fresh UUID as application message ID on
// every firing.
const appMessageIDUUID = "uuid"

// Scheduler owns one stream instance per feed rule and drives their
// timer loops. All state transitions are serialized through a single
// mutex; firings run on per-instance goroutines.
type Scheduler struct {
	synth     *synthesizer.Synthesizer
	transport transport.Transport
	log       *eventlog.Log
	metrics   *metric.Metrics
	logger    *slog.Logger

	mu        sync.Mutex
	instances map[string]*instance
	order     []string
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for firing and lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithMetrics wires the scheduler to a metrics registry.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(s *Scheduler) {
		s.metrics = registry.CoreMetrics()
	}
}

// New builds a scheduler with one idle instance per rule. Rules sharing
// an event name are rejected upstream by feed loading; the last one wins
// here.
func New(rules []feed.Rule, synth *synthesizer.Synthesizer, tr transport.Transport, log *eventlog.Log, opts ...Option) *Scheduler {
	s := &Scheduler{
		synth:     synth,
		transport: tr,
		log:       log,
		logger:    slog.Default(),
		instances: make(map[string]*instance, len(rules)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, rule := range rules {
		if _, exists := s.instances[rule.EventName]; !exists {
			s.order = append(s.order, rule.EventName)
		}
		s.instances[rule.EventName] = newInstance(rule)
	}

	return s
}

// Start moves an idle instance to Pending, then to Running once its start
// delay elapses. Starting an instance that is already Pending or Running
// is a no-op.
func (s *Scheduler) Start(eventName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "Start", "look up stream "+eventName)
	}
	if inst.status != StatusIdle {
		return nil
	}

	s.startLocked(inst)
	s.logger.Info("stream started",
		"event", eventName,
		"rate", inst.rate,
		"frequency", string(inst.freq),
		"delay", inst.delay,
		"maxMessageCount", inst.maxCount)
	return nil
}

// startLocked arms the delay timer for an idle instance. Caller holds the
// mutex.
func (s *Scheduler) startLocked(inst *instance) {
	inst.generation++
	inst.stopCh = make(chan struct{})
	s.setStatusLocked(inst, StatusPending)

	gen := inst.generation
	interval := inst.interval()
	inst.delayTimer = time.AfterFunc(inst.delay, func() {
		s.beginRunning(inst, gen, interval)
	})
}

// beginRunning transitions Pending → Running after the start delay and
// launches the ticker loop. A stop that raced the delay timer wins.
func (s *Scheduler) beginRunning(inst *instance, gen uint64, interval time.Duration) {
	s.mu.Lock()
	if inst.generation != gen || inst.status != StatusPending {
		s.mu.Unlock()
		return
	}
	s.setStatusLocked(inst, StatusRunning)
	stopCh := inst.stopCh
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				s.fire(inst, gen)
			}
		}
	}()
}

// Stop halts an instance and resets its sent count. Stopping an idle or
// unknown instance is a no-op; a stop on an unknown name still reports
// ErrStreamNotFound so callers can distinguish typos from idle streams.
func (s *Scheduler) Stop(eventName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "Stop", "look up stream "+eventName)
	}
	if inst.status == StatusIdle {
		return nil
	}

	s.stopLocked(inst)
	s.logger.Info("stream stopped", "event", eventName)
	return nil
}

// stopLocked tears down timers and resets counters. Caller holds the
// mutex. Idempotent.
func (s *Scheduler) stopLocked(inst *instance) {
	inst.generation++
	if inst.delayTimer != nil {
		inst.delayTimer.Stop()
		inst.delayTimer = nil
	}
	if inst.stopCh != nil {
		close(inst.stopCh)
		inst.stopCh = nil
	}
	inst.sent = 0
	s.setStatusLocked(inst, StatusIdle)
}

// StartAll starts every idle instance. Instances already active keep
// running undisturbed.
func (s *Scheduler) StartAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.order {
		inst := s.instances[name]
		if inst.status == StatusIdle {
			s.startLocked(inst)
		}
	}
	s.logger.Info("all streams started", "count", len(s.order))
}

// StopAll stops every active instance.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.order {
		inst := s.instances[name]
		if inst.status != StatusIdle {
			s.stopLocked(inst)
		}
	}
	s.logger.Info("all streams stopped")
}

// UpdateRate changes an instance's publish rate and frequency unit. An
// active instance is stopped first; the new settings take effect on the
// next Start.
func (s *Scheduler) UpdateRate(eventName string, rate float64, unit FrequencyUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "UpdateRate", "look up stream "+eventName)
	}
	if inst.status != StatusIdle {
		s.stopLocked(inst)
	}

	if rate <= 0 {
		rate = 1
	}
	inst.rate = rate
	inst.freq = unit
	return nil
}

// UpdateDelay changes an instance's start delay. An active instance is
// stopped first.
func (s *Scheduler) UpdateDelay(eventName string, seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "UpdateDelay", "look up stream "+eventName)
	}
	if inst.status != StatusIdle {
		s.stopLocked(inst)
	}

	if seconds < 0 {
		seconds = 0
	}
	inst.delay = time.Duration(seconds * float64(time.Second))
	return nil
}

// UpdateMaxMessageCount changes the auto-stop limit in place. The new
// limit applies from the next firing; Unbounded removes the limit.
func (s *Scheduler) UpdateMaxMessageCount(eventName string, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "UpdateMaxMessageCount", "look up stream "+eventName)
	}
	if limit < 0 {
		limit = Unbounded
	}
	inst.maxCount = limit
	return nil
}

// UpdateTTL changes the per-message time to live in place.
func (s *Scheduler) UpdateTTL(eventName string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "UpdateTTL", "look up stream "+eventName)
	}
	if ttl < 0 {
		ttl = 0
	}
	inst.ttl = ttl
	return nil
}

// Status reports the current state of one instance.
func (s *Scheduler) Status(eventName string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[eventName]
	if !ok {
		return StatusIdle, errors.WrapInvalid(errors.ErrStreamNotFound, "Scheduler", "Status", "look up stream "+eventName)
	}
	return inst.status, nil
}

// Instances returns a snapshot of every instance, sorted by event name.
func (s *Scheduler) Instances() []Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]Info, 0, len(s.instances))
	for _, inst := range s.instances {
		infos = append(infos, inst.info())
	}
	sort.Slice(infos, func(a, b int) bool {
		return infos[a].EventName < infos[b].EventName
	})
	return infos
}

// ActiveCount returns how many instances are Pending or Running.
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCountLocked()
}

func (s *Scheduler) activeCountLocked() int {
	active := 0
	for _, inst := range s.instances {
		if inst.status != StatusIdle {
			active++
		}
	}
	return active
}

// Shutdown stops every instance. Safe to call more than once.
func (s *Scheduler) Shutdown() {
	s.StopAll()
}

// setStatusLocked transitions an instance and keeps the gauges in step.
// Caller holds the mutex.
func (s *Scheduler) setStatusLocked(inst *instance, status Status) {
	inst.status = status
	if s.metrics != nil {
		s.metrics.RecordStreamStatus(inst.rule.EventName, int(status))
		s.metrics.RecordStreamsActive(s.activeCountLocked())
	}
}

// fire synthesizes and publishes one event. A failed firing is logged and
// the loop carries on; only the count limit stops a stream from inside.
func (s *Scheduler) fire(inst *instance, gen uint64) {
	s.mu.Lock()
	if inst.generation != gen || inst.status != StatusRunning {
		s.mu.Unlock()
		return
	}
	inst.sent++
	count := inst.sent
	rule := inst.rule
	tagColor := inst.tagColor
	opts := s.optionsLocked(inst)
	userProperties := inst.userProperties
	partitionKeys := inst.partitionKeys
	limitReached := inst.maxCount != Unbounded && inst.sent >= inst.maxCount
	s.mu.Unlock()

	event := s.synth.Synthesize(rule)
	if s.metrics != nil {
		s.metrics.RecordEventSynthesized(rule.EventName)
	}

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		s.logger.Warn("payload marshal failed, skipping publish",
			"event", rule.EventName,
			"error", err)
		if s.metrics != nil {
			s.metrics.RecordPublishError(rule.EventName, "marshal")
		}
	} else {
		if props := feed.ParseUserProperties(userProperties); props != nil {
			opts.UserProperties = props
		}
		if key, ok := feed.ResolvePartitionKeys(event.Payload, partitionKeys); ok {
			if opts.UserProperties == nil {
				opts.UserProperties = make(map[string]string, 1)
			}
			opts.UserProperties[transport.PartitionKeyProperty] = key
		}

		start := time.Now()
		err = s.transport.Send(context.Background(), event.Topic, payload, opts)
		if s.metrics != nil {
			s.metrics.RecordPublishDuration(rule.EventName, time.Since(start))
		}
		if err != nil {
			s.logger.Warn("publish failed",
				"event", rule.EventName,
				"topic", event.Topic,
				"error", err)
			if s.metrics != nil {
				s.metrics.RecordPublishError(rule.EventName, errors.Classify(err).String())
			}
		} else {
			if s.metrics != nil {
				s.metrics.RecordEventPublished(rule.EventName)
			}
			s.log.Append(eventlog.Entry{
				EventName: rule.EventName,
				Topic:     event.Topic,
				Payload:   payload,
				CountSend: count,
				TagColor:  tagColor,
			})
		}
	}

	if limitReached {
		s.mu.Lock()
		if inst.generation == gen && inst.status == StatusRunning {
			s.stopLocked(inst)
			s.logger.Info("stream reached message count limit",
				"event", rule.EventName,
				"limit", count)
		}
		s.mu.Unlock()
	}
}

// optionsLocked builds the per-message delivery options from the
// instance's current message settings. Caller holds the mutex. User
// properties are filled in later, outside the lock.
func (s *Scheduler) optionsLocked(inst *instance) transport.Options {
	opts := transport.Options{
		DeliveryMode: transport.DeliveryDirect,
		DMQEligible:  inst.dmqEligible,
		TimeToLive:   inst.ttl,
	}
	if inst.ttl > 0 || inst.dmqEligible {
		opts.DeliveryMode = transport.DeliveryPersistent
	}
	switch inst.appMessageID {
	case appMessageIDUUID:
		opts.ApplicationMessageID = uuid.NewString()
	case "":
	default:
		opts.ApplicationMessageID = inst.appMessageID
	}
	return opts
}
