package scheduler

import (
	"math/rand"
	"time"

	"github.com/solacecommunity/feedstreams/feed"
)

// Status is the lifecycle state of one stream instance.
type Status int

// Instance states: Idle → Pending(delay) → Running → Idle.
const (
	StatusIdle Status = iota
	StatusPending
	StatusRunning
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// FrequencyUnit is the time base a publish rate is expressed against.
type FrequencyUnit string

// Supported frequency units.
const (
	PerSecond FrequencyUnit = "msg/s"
	PerMinute FrequencyUnit = "msg/m"
	PerHour   FrequencyUnit = "msg/h"
)

// Millis returns the unit's span in milliseconds. Unknown units fall back
// to one second.
func (u FrequencyUnit) Millis() float64 {
	switch u {
	case PerSecond:
		return 1000
	case PerMinute:
		return 60000
	case PerHour:
		return 3600000
	default:
		return 1000
	}
}

// Unbounded disables the per-instance message count limit.
const Unbounded = -1

// tagColors is the palette a stream's display tag is drawn from, once per
// instance.
var tagColors = []string{
	"magenta", "red", "volcano", "orange", "gold", "lime", "green",
	"cyan", "blue", "geekblue", "purple",
}

// instance is the mutable runtime state derived from one feed rule. All
// fields are guarded by the scheduler's mutex.
type instance struct {
	rule feed.Rule

	status   Status
	rate     float64
	freq     FrequencyUnit
	delay    time.Duration
	maxCount int
	sent     int
	tagColor string

	// Message settings, updatable at runtime
	ttl            time.Duration
	dmqEligible    bool
	appMessageID   string
	userProperties string
	partitionKeys  string

	// Timer handles, valid while status != Idle
	delayTimer *time.Timer
	stopCh     chan struct{}
	generation uint64
}

// newInstance derives initial runtime state from a feed rule.
func newInstance(rule feed.Rule) *instance {
	inst := &instance{
		rule:     rule,
		status:   StatusIdle,
		// The rule's publish interval seeds the starting rate; a stream
		// runs at its configured cadence before any runtime update.
		rate: float64(rule.PublishSettings.Interval),
		freq:     PerSecond,
		delay:    time.Duration(rule.PublishSettings.Delay) * time.Second,
		maxCount: rule.PublishSettings.Count.Int(),
		tagColor: tagColors[rand.Intn(len(tagColors))],
	}
	if inst.rate <= 0 {
		inst.rate = 1
	}
	if inst.maxCount == 0 {
		inst.maxCount = feed.DefaultPublishCount
	} else if inst.maxCount < 0 {
		inst.maxCount = Unbounded
	}

	if ms := rule.MessageSettings; ms != nil {
		inst.ttl = time.Duration(ms.TimeToLive.Int()) * time.Millisecond
		inst.dmqEligible = ms.DMQEligible
		inst.appMessageID = ms.AppMessageID
		inst.userProperties = ms.UserProperties
		inst.partitionKeys = ms.PartitionKeys
	}

	return inst
}

// interval derives the inter-message period from rate and frequency unit.
// Rates above one divide the unit span; rates at or below one multiply it.
// The asymmetry is historical and feed files are tuned against it, so it
// stays.
func (i *instance) interval() time.Duration {
	unit := i.freq.Millis()
	var millis float64
	if i.rate > 1 {
		millis = unit / i.rate
	} else {
		millis = unit * i.rate
	}
	return time.Duration(millis * float64(time.Millisecond))
}

// Info is a read-only snapshot of one stream instance.
type Info struct {
	EventName       string        `json:"eventName"`
	Topic           string        `json:"topic"`
	Status          string        `json:"status"`
	Rate            float64       `json:"rate"`
	FrequencyUnit   FrequencyUnit `json:"frequencyUnit"`
	DelaySeconds    float64       `json:"delaySeconds"`
	MaxMessageCount int           `json:"maxMessageCount"`
	SentCount       int           `json:"sentCount"`
	TagColor        string        `json:"tagColor"`
}

func (i *instance) info() Info {
	return Info{
		EventName:       i.rule.EventName,
		Topic:           i.rule.Topic,
		Status:          i.status.String(),
		Rate:            i.rate,
		FrequencyUnit:   i.freq,
		DelaySeconds:    i.delay.Seconds(),
		MaxMessageCount: i.maxCount,
		SentCount:       i.sent,
		TagColor:        i.tagColor,
	}
}
