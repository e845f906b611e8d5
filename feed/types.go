package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/solacecommunity/feedstreams/generator"
)

// Publish settings applied when a feed rule omits them.
const (
	DefaultPublishCount    = 20
	DefaultPublishInterval = 1
	DefaultPublishDelay    = 0
)

// TargetTopicParameter is the mapping target type routing a payload field
// into the topic string.
const TargetTopicParameter = "Topic Parameter"

// FlexString tolerates numeric JSON values where feed files are loose
// about quoting (eventVersion appears both ways in community feeds).
type FlexString string

// UnmarshalJSON accepts "1.0.2", 2 and null.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "null" {
		trimmed = ""
	}
	*s = FlexString(trimmed)
	return nil
}

// FlexFloat tolerates string-encoded JSON numbers.
type FlexFloat float64

// UnmarshalJSON accepts 0.5, "0.5", "" and null.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Rule is one event definition: a topic template, a payload schema
// annotated with generation rules, and publish timing settings. Rules are
// loaded once and treated as immutable templates; stream instances derive
// their mutable runtime state from them.
type Rule struct {
	Topic           string                    `json:"topic"`
	EventName       string                    `json:"eventName"`
	EventVersion    FlexString                `json:"eventVersion,omitempty"`
	MessageName     string                    `json:"messageName,omitempty"`
	TopicParameters map[string]TopicParameter `json:"topicParameters,omitempty"`
	Payload         Properties                `json:"payload"`
	Mappings        []FieldMapping            `json:"mappings,omitempty"`
	PublishSettings PublishSettings           `json:"publishSettings"`
	MessageSettings *MessageSettings          `json:"messageSettings,omitempty"`
}

// applyDefaults fills in publish settings the rule file omitted.
func (r *Rule) applyDefaults() {
	if r.PublishSettings.Count == 0 {
		r.PublishSettings.Count = DefaultPublishCount
	}
	if r.PublishSettings.Interval == 0 {
		r.PublishSettings.Interval = DefaultPublishInterval
	}
}

// TopicParameter describes one {name} placeholder in the topic template.
// Schema is a documentation-only type constraint; Rule generates the value
// when no mapping satisfies the parameter.
type TopicParameter struct {
	Schema json.RawMessage `json:"schema,omitempty"`
	Rule   generator.Rule  `json:"rule"`
}

// FieldMapping routes a generated payload field into a topic parameter.
type FieldMapping struct {
	Source MappingEndpoint `json:"source"`
	Target MappingEndpoint `json:"target"`
}

// MappingEndpoint names one side of a field mapping.
type MappingEndpoint struct {
	Type      string `json:"type,omitempty"`
	FieldName string `json:"fieldName"`
}

// PublishSettings carries the per-rule publish loop defaults.
type PublishSettings struct {
	Count    generator.FlexInt `json:"count,omitempty"`
	Interval FlexFloat         `json:"interval,omitempty"`
	Delay    generator.FlexInt `json:"delay,omitempty"`
}

// MessageSettings carries optional broker delivery options for a rule.
type MessageSettings struct {
	DMQEligible    bool              `json:"dmqEligible,omitempty"`
	TimeToLive     generator.FlexInt `json:"timeToLive,omitempty"`
	AppMessageID   string            `json:"appMessageId,omitempty"`
	UserProperties string            `json:"userProperties,omitempty"`
	PartitionKeys  string            `json:"partitionKeys,omitempty"`
}

// PayloadNode is one named field in a rule's payload description. Object
// nodes recurse through Properties; array nodes describe their element
// shape with SubType and element Properties.
type PayloadNode struct {
	Type       string          `json:"type,omitempty"`
	SubType    string          `json:"subType,omitempty"`
	Rule       *generator.Rule `json:"rule,omitempty"`
	Properties Properties      `json:"properties,omitzero"`
}

// Properties is an ordered field-name → PayloadNode mapping. Declared field
// order must survive into synthesized payloads, so the JSON object's key
// order is captured during decoding.
type Properties struct {
	keys  []string
	nodes map[string]*PayloadNode
}

// UnmarshalJSON decodes the object token by token to preserve key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("properties must be a JSON object")
	}

	p.keys = nil
	p.nodes = make(map[string]*PayloadNode)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", keyTok)
		}

		var node PayloadNode
		if err := dec.Decode(&node); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		p.keys = append(p.keys, key)
		p.nodes[key] = &node
	}

	_, err = dec.Token() // closing brace
	return err
}

// MarshalJSON writes the fields back in declared order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		nodeJSON, err := json.Marshal(p.nodes[key])
		if err != nil {
			return nil, err
		}
		buf.Write(nodeJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys returns the field names in declared order.
func (p Properties) Keys() []string {
	return p.keys
}

// Get returns the node for a field name.
func (p Properties) Get(name string) (*PayloadNode, bool) {
	node, ok := p.nodes[name]
	return node, ok
}

// Len returns the number of declared fields.
func (p Properties) Len() int {
	return len(p.keys)
}

// IsZero reports whether no fields are declared. Scalar payload nodes have
// zero Properties and the omitzero tag keeps them out of marshaled output.
func (p Properties) IsZero() bool {
	return len(p.keys) == 0
}

// Info is per-feed metadata loaded from feedinfo.json when present.
type Info struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Contributor string   `json:"contributor,omitempty"`
	Domain      string   `json:"domain,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
