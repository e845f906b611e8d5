package feed

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/feedstreams/generator"
)

func TestProperties_PreservesDeclaredOrder(t *testing.T) {
	raw := `{
		"zebra": {"type": "string"},
		"apple": {"type": "number"},
		"mango": {"type": "boolean"},
		"banana": {"type": "string"}
	}`

	var props Properties
	require.NoError(t, json.Unmarshal([]byte(raw), &props))

	assert.Equal(t, []string{"zebra", "apple", "mango", "banana"}, props.Keys())
	assert.Equal(t, 4, props.Len())

	node, ok := props.Get("apple")
	require.True(t, ok)
	assert.Equal(t, "number", node.Type)

	_, ok = props.Get("missing")
	assert.False(t, ok)
}

func TestProperties_NestedObjectsAndArrays(t *testing.T) {
	raw := `{
		"customer": {
			"type": "object",
			"properties": {
				"name": {"type": "string", "rule": {"group": "PersonRules", "rule": "fullName"}},
				"id": {"type": "number"}
			}
		},
		"items": {
			"type": "array",
			"subType": "object",
			"rule": {"group": "NumberRules", "count": 3},
			"properties": {
				"sku": {"type": "string"}
			}
		}
	}`

	var props Properties
	require.NoError(t, json.Unmarshal([]byte(raw), &props))

	customer, ok := props.Get("customer")
	require.True(t, ok)
	assert.Equal(t, []string{"name", "id"}, customer.Properties.Keys())

	name, ok := customer.Properties.Get("name")
	require.True(t, ok)
	require.NotNil(t, name.Rule)
	assert.Equal(t, generator.GroupPerson, name.Rule.Group)

	items, ok := props.Get("items")
	require.True(t, ok)
	assert.Equal(t, "array", items.Type)
	assert.Equal(t, "object", items.SubType)
	require.NotNil(t, items.Rule)
	assert.Equal(t, 3, items.Rule.Count)
}

func TestProperties_MarshalRoundTrip(t *testing.T) {
	raw := `{"b":{"type":"string"},"a":{"type":"number"}}`

	var props Properties
	require.NoError(t, json.Unmarshal([]byte(raw), &props))

	out, err := json.Marshal(props)
	require.NoError(t, err)

	// Declared order survives the round trip
	assert.JSONEq(t, raw, string(out))
	assert.Less(t,
		strings.Index(string(out), `"b"`), strings.Index(string(out), `"a"`),
		"field b must stay before field a")
}

func TestPayloadNode_ScalarMarshalOmitsProperties(t *testing.T) {
	raw := `{"scalar":{"type":"string","rule":{"group":"StringRules","rule":"alpha"}}}`

	var props Properties
	require.NoError(t, json.Unmarshal([]byte(raw), &props))

	out, err := json.Marshal(props)
	require.NoError(t, err)

	// Scalar nodes have no child fields; marshaling must not add an empty
	// properties object.
	assert.NotContains(t, string(out), `"properties"`)
	assert.JSONEq(t, raw, string(out))
}

func TestProperties_RejectsNonObject(t *testing.T) {
	var props Properties
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &props))
}

func TestRule_Decode(t *testing.T) {
	raw := `{
		"topic": "acme/hr/{region}/{employeeId}",
		"eventName": "Employee Hired",
		"eventVersion": 2,
		"topicParameters": {
			"region": {"rule": {"group": "StringRules", "rule": "enum", "enum": ["emea", "apac"]}}
		},
		"payload": {
			"employeeId": {"type": "number", "rule": {"group": "NumberRules", "rule": "int", "minimum": 1, "maximum": 5}}
		},
		"mappings": [
			{"source": {"fieldName": "employeeId"}, "target": {"type": "Topic Parameter", "fieldName": "employeeId"}}
		],
		"publishSettings": {"count": "10", "interval": "0.5", "delay": 2},
		"messageSettings": {"dmqEligible": true, "timeToLive": "5000", "appMessageId": "uuid"}
	}`

	var rule Rule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))

	assert.Equal(t, "Employee Hired", rule.EventName)
	assert.Equal(t, FlexString("2"), rule.EventVersion)
	assert.Equal(t, generator.FlexInt(10), rule.PublishSettings.Count)
	assert.Equal(t, FlexFloat(0.5), rule.PublishSettings.Interval)
	assert.Equal(t, generator.FlexInt(2), rule.PublishSettings.Delay)

	require.NotNil(t, rule.MessageSettings)
	assert.True(t, rule.MessageSettings.DMQEligible)
	assert.Equal(t, 5000, rule.MessageSettings.TimeToLive.Int())
	assert.Equal(t, "uuid", rule.MessageSettings.AppMessageID)

	require.Len(t, rule.Mappings, 1)
	assert.Equal(t, TargetTopicParameter, rule.Mappings[0].Target.Type)

	region, ok := rule.TopicParameters["region"]
	require.True(t, ok)
	assert.Equal(t, "enum", region.Rule.Rule)
}

func TestRule_ApplyDefaults(t *testing.T) {
	var rule Rule
	rule.applyDefaults()

	assert.Equal(t, generator.FlexInt(DefaultPublishCount), rule.PublishSettings.Count)
	assert.Equal(t, FlexFloat(DefaultPublishInterval), rule.PublishSettings.Interval)
	assert.Equal(t, generator.FlexInt(DefaultPublishDelay), rule.PublishSettings.Delay)

	// Explicit settings survive
	rule.PublishSettings = PublishSettings{Count: 5, Interval: 2, Delay: 1}
	rule.applyDefaults()
	assert.Equal(t, generator.FlexInt(5), rule.PublishSettings.Count)
}

func TestFlexFloat_Unmarshal(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{`0.5`, 0.5, false},
		{`"2"`, 2, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
	}

	for _, tt := range tests {
		var f FlexFloat
		err := f.UnmarshalJSON([]byte(tt.input))
		if tt.wantErr {
			assert.Error(t, err, "input %s", tt.input)
			continue
		}
		require.NoError(t, err, "input %s", tt.input)
		assert.Equal(t, FlexFloat(tt.expected), f, "input %s", tt.input)
	}
}
