package scheduler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/feedstreams/errors"
	"github.com/solacecommunity/feedstreams/eventlog"
	"github.com/solacecommunity/feedstreams/feed"
	"github.com/solacecommunity/feedstreams/generator"
	"github.com/solacecommunity/feedstreams/synthesizer"
	"github.com/solacecommunity/feedstreams/transport"
)

func testRule(t *testing.T, raw string) feed.Rule {
	t.Helper()
	var rule feed.Rule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))
	return rule
}

// orderRule publishes quickly with a small payload. Count and interval
// are overridden per test via the raw JSON.
const orderRuleJSON = `{
	"topic": "acme/orders/{region}",
	"eventName": "Order Created",
	"topicParameters": {
		"region": {
			"rule": {"group": "StringRules", "rule": "enum", "enum": ["emea", "apac"]}
		}
	},
	"payload": {
		"orderId": {"type": "string", "rule": {"group": "StringRules", "rule": "uuid"}},
		"employeeId": {"type": "integer", "rule": {"group": "NumberRules", "rule": "int", "minimum": 1, "maximum": 5}}
	},
	"publishSettings": {"count": -1, "interval": 20, "delay": 0}
}`

func newTestScheduler(t *testing.T, rec *transport.Recorder, rules ...feed.Rule) (*Scheduler, *eventlog.Log) {
	t.Helper()
	synth := synthesizer.New(generator.NewRegistry())
	log := eventlog.New(200)
	s := New(rules, synth, rec, log)
	t.Cleanup(s.Shutdown)
	return s, log
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestNew_InstancesStartIdle(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	infos := s.Instances()
	require.Len(t, infos, 1)
	assert.Equal(t, "Order Created", infos[0].EventName)
	assert.Equal(t, "idle", infos[0].Status)
	assert.Equal(t, float64(20), infos[0].Rate)
	assert.Equal(t, PerSecond, infos[0].FrequencyUnit)
	assert.Equal(t, Unbounded, infos[0].MaxMessageCount)
	assert.Contains(t, tagColors, infos[0].TagColor)
}

func TestNew_DefaultsApply(t *testing.T) {
	rec := transport.NewRecorder()
	rule := testRule(t, `{"topic": "t", "eventName": "Bare", "payload": {}}`)
	s, _ := newTestScheduler(t, rec, rule)

	infos := s.Instances()
	require.Len(t, infos, 1)
	assert.Equal(t, float64(1), infos[0].Rate)
	assert.Equal(t, feed.DefaultPublishCount, infos[0].MaxMessageCount)
	assert.Equal(t, float64(0), infos[0].DelaySeconds)
}

func TestStart_UnknownStream(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec)

	err := s.Start("No Such Event")
	assert.ErrorIs(t, err, errors.ErrStreamNotFound)

	assert.ErrorIs(t, s.Stop("No Such Event"), errors.ErrStreamNotFound)
	assert.ErrorIs(t, s.UpdateRate("No Such Event", 1, PerSecond), errors.ErrStreamNotFound)
	assert.ErrorIs(t, s.UpdateDelay("No Such Event", 0), errors.ErrStreamNotFound)
	assert.ErrorIs(t, s.UpdateMaxMessageCount("No Such Event", 1), errors.ErrStreamNotFound)
	assert.ErrorIs(t, s.UpdateTTL("No Such Event", 0), errors.ErrStreamNotFound)
}

func TestStart_ActiveIsNoOp(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.NoError(t, s.Start("Order Created"))

	assert.Equal(t, 1, s.ActiveCount())
}

func TestStop_IdleIsNoOp(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Stop("Order Created"))
	require.NoError(t, s.Stop("Order Created"))

	status, err := s.Status("Order Created")
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, status)
	assert.Equal(t, 0, rec.Count())
}

func TestStop_ResetsSentCount(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.True(t, waitFor(t, 2*time.Second, func() bool { return rec.Count() >= 2 }))
	require.NoError(t, s.Stop("Order Created"))

	infos := s.Instances()
	require.Len(t, infos, 1)
	assert.Equal(t, 0, infos[0].SentCount)
	assert.Equal(t, "idle", infos[0].Status)
}

func TestCountLimit_StopsAfterExactCount(t *testing.T) {
	rec := transport.NewRecorder()
	raw := `{
		"topic": "acme/limited",
		"eventName": "Limited",
		"payload": {"n": {"type": "integer"}},
		"publishSettings": {"count": 3, "interval": 20, "delay": 0}
	}`
	s, _ := newTestScheduler(t, rec, testRule(t, raw))

	require.NoError(t, s.Start("Limited"))

	require.True(t, waitFor(t, 3*time.Second, func() bool {
		status, _ := s.Status("Limited")
		return status == StatusIdle
	}), "stream should stop itself at the count limit")

	// Give any stale timer a chance to misfire before counting
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 3, rec.Count())
}

func TestUpdateRate_StopsActiveStream(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.True(t, waitFor(t, time.Second, func() bool {
		status, _ := s.Status("Order Created")
		return status == StatusRunning
	}))

	require.NoError(t, s.UpdateRate("Order Created", 30, PerMinute))

	status, err := s.Status("Order Created")
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, status)

	infos := s.Instances()
	assert.Equal(t, float64(30), infos[0].Rate)
	assert.Equal(t, PerMinute, infos[0].FrequencyUnit)
}

func TestUpdateDelay_StopsActiveStream(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.NoError(t, s.UpdateDelay("Order Created", 2.5))

	status, err := s.Status("Order Created")
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, status)
	assert.Equal(t, 2.5, s.Instances()[0].DelaySeconds)
}

func TestUpdateMaxMessageCount_InPlace(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.NoError(t, s.UpdateMaxMessageCount("Order Created", 1000))

	// The update does not interrupt the stream
	status, err := s.Status("Order Created")
	require.NoError(t, err)
	assert.NotEqual(t, StatusIdle, status)
	assert.Equal(t, 1000, s.Instances()[0].MaxMessageCount)
}

func TestDelay_HoldsStreamPending(t *testing.T) {
	rec := transport.NewRecorder()
	raw := `{
		"topic": "acme/delayed",
		"eventName": "Delayed",
		"payload": {"n": {"type": "integer"}},
		"publishSettings": {"count": -1, "interval": 20, "delay": 2}
	}`
	s, _ := newTestScheduler(t, rec, testRule(t, raw))

	require.NoError(t, s.Start("Delayed"))

	status, err := s.Status("Delayed")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 0, rec.Count(), "no publishes before the delay elapses")

	require.NoError(t, s.Stop("Delayed"))
}

func TestRate_TwoPerSecond(t *testing.T) {
	rec := transport.NewRecorder()
	raw := `{
		"topic": "acme/steady",
		"eventName": "Steady",
		"payload": {"n": {"type": "integer"}},
		"publishSettings": {"count": -1, "interval": 2, "delay": 0}
	}`
	s, _ := newTestScheduler(t, rec, testRule(t, raw))

	require.NoError(t, s.Start("Steady"))
	time.Sleep(1300 * time.Millisecond)

	assert.GreaterOrEqual(t, rec.Count(), 2)

	status, err := s.Status("Steady")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status)
}

func TestStartAllStopAll(t *testing.T) {
	rec := transport.NewRecorder()
	a := testRule(t, orderRuleJSON)
	b := testRule(t, `{
		"topic": "acme/shipments",
		"eventName": "Shipment Updated",
		"payload": {"n": {"type": "integer"}},
		"publishSettings": {"count": -1, "interval": 20, "delay": 0}
	}`)
	s, _ := newTestScheduler(t, rec, a, b)

	s.StartAll()
	assert.Equal(t, 2, s.ActiveCount())

	s.StopAll()
	assert.Equal(t, 0, s.ActiveCount())
	for _, info := range s.Instances() {
		assert.Equal(t, "idle", info.Status)
		assert.Equal(t, 0, info.SentCount)
	}
}

func TestFire_AppendsEventLog(t *testing.T) {
	rec := transport.NewRecorder()
	s, log := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.True(t, waitFor(t, 2*time.Second, func() bool { return log.Len() >= 3 }))
	require.NoError(t, s.Stop("Order Created"))

	entries := log.Snapshot()
	require.GreaterOrEqual(t, len(entries), 3)
	for i, entry := range entries[:3] {
		assert.Equal(t, "Order Created", entry.EventName)
		assert.Equal(t, i+1, entry.CountSend)
		assert.Contains(t, tagColors, entry.TagColor)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(entry.Payload, &payload))
		assert.Contains(t, payload, "orderId")
		assert.Contains(t, payload, "employeeId")
	}

	// Tag color is fixed per instance
	assert.Equal(t, entries[0].TagColor, entries[1].TagColor)
}

func TestFire_MessageOptions(t *testing.T) {
	rec := transport.NewRecorder()
	raw := `{
		"topic": "acme/settings",
		"eventName": "With Settings",
		"payload": {
			"employeeId": {"type": "integer", "rule": {"group": "NumberRules", "rule": "int", "minimum": 1, "maximum": 9}},
			"region": {"type": "string", "rule": {"group": "StringRules", "rule": "enum", "enum": ["emea"]}}
		},
		"publishSettings": {"count": 1, "interval": 20, "delay": 0},
		"messageSettings": {
			"dmqEligible": true,
			"timeToLive": 5000,
			"appMessageId": "uuid",
			"userProperties": "source:simulator \"env name\":\"prod one\"",
			"partitionKeys": "region|employeeId"
		}
	}`
	s, _ := newTestScheduler(t, rec, testRule(t, raw))

	require.NoError(t, s.Start("With Settings"))
	require.True(t, waitFor(t, 2*time.Second, func() bool { return rec.Count() >= 1 }))

	messages := rec.Messages()
	require.NotEmpty(t, messages)
	opts := messages[0].Options

	assert.Equal(t, transport.DeliveryPersistent, opts.DeliveryMode)
	assert.True(t, opts.DMQEligible)
	assert.Equal(t, 5*time.Second, opts.TimeToLive)

	_, err := uuid.Parse(opts.ApplicationMessageID)
	assert.NoError(t, err, "appMessageId uuid mode should produce a parseable UUID")

	assert.Equal(t, "simulator", opts.UserProperties["source"])
	assert.Equal(t, "prod one", opts.UserProperties["env name"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(messages[0].Payload, &payload))
	key := opts.UserProperties[transport.PartitionKeyProperty]
	assert.Equal(t, "emea-"+feed.Stringify(payload["employeeId"]), key)
}

func TestFire_TransportFailureKeepsStreamRunning(t *testing.T) {
	rec := transport.NewRecorder()
	s, log := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	rec.FailWith(assert.AnError)
	require.NoError(t, s.Start("Order Created"))
	time.Sleep(300 * time.Millisecond)

	status, err := s.Status("Order Created")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, 0, log.Len(), "failed publishes stay out of the event log")

	rec.FailWith(nil)
	require.True(t, waitFor(t, 2*time.Second, func() bool { return rec.Count() >= 1 }))
}

func TestStop_NoFiringsAfterReturn(t *testing.T) {
	rec := transport.NewRecorder()
	s, _ := newTestScheduler(t, rec, testRule(t, orderRuleJSON))

	require.NoError(t, s.Start("Order Created"))
	require.True(t, waitFor(t, 2*time.Second, func() bool { return rec.Count() >= 1 }))
	require.NoError(t, s.Stop("Order Created"))

	settled := rec.Count()
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, settled, rec.Count())
}

func TestInstance_Interval(t *testing.T) {
	tests := []struct {
		rate     float64
		freq     FrequencyUnit
		expected time.Duration
	}{
		{1, PerSecond, time.Second},
		{2, PerSecond, 500 * time.Millisecond},
		{20, PerSecond, 50 * time.Millisecond},
		{0.5, PerSecond, 500 * time.Millisecond},
		{1, PerMinute, time.Minute},
		{30, PerMinute, 2 * time.Second},
		{1, PerHour, time.Hour},
		{1, FrequencyUnit("bogus"), time.Second},
	}

	for _, tt := range tests {
		inst := &instance{rate: tt.rate, freq: tt.freq}
		if got := inst.interval(); got != tt.expected {
			t.Errorf("interval(rate=%v, freq=%q) = %v, want %v", tt.rate, tt.freq, got, tt.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "unknown", Status(99).String())
}
