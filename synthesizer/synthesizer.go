package synthesizer

import (
	"log/slog"
	"strings"

	"github.com/solacecommunity/feedstreams/feed"
	"github.com/solacecommunity/feedstreams/generator"
)

// defaultArrayCount is the element count for array fields whose rule
// declares none.
const defaultArrayCount = 2

// Event is one synthesized (topic, payload) pair ready for transport.
type Event struct {
	Topic   string
	Payload *Object
}

// Synthesizer turns feed rules into events: it walks the rule's payload
// schema generating a value per field, then resolves the topic template,
// preferring explicit field-to-parameter mappings over independently
// generated parameter values.
type Synthesizer struct {
	registry *generator.Registry
	logger   *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger sets the logger used for degraded-generation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// New builds a Synthesizer over the given rule registry.
func New(registry *generator.Registry, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize produces one event from a feed rule. It never fails: a bad
// field degrades locally (family default, literal placeholder) and the
// remaining fields are still produced.
func (s *Synthesizer) Synthesize(rule feed.Rule) Event {
	payload := s.buildObject(rule.Payload)
	topic := s.buildTopic(rule, payload)
	return Event{Topic: topic, Payload: payload}
}

// buildObject walks an ordered property set, generating a value per field
// in declared order.
func (s *Synthesizer) buildObject(props feed.Properties) *Object {
	obj := NewObject()
	for _, name := range props.Keys() {
		node, _ := props.Get(name)
		obj.Set(name, s.buildValue(node))
	}
	return obj
}

func (s *Synthesizer) buildValue(node *feed.PayloadNode) any {
	switch node.Type {
	case "object":
		return s.buildObject(node.Properties)
	case "array":
		count := defaultArrayCount
		if node.Rule != nil && node.Rule.Count > 0 {
			count = node.Rule.Count
		}
		elements := make([]any, count)
		for i := range elements {
			if node.SubType == "object" {
				elements[i] = s.buildObject(node.Properties)
			} else {
				elements[i] = s.generateScalar(node.SubType, node.Rule)
			}
		}
		return elements
	default:
		return s.generateScalar(node.Type, node.Rule)
	}
}

// generateScalar generates one scalar value. A field without a rule falls
// back to the default rule of the family matching its declared type; the
// empty rule name then resolves to that family's default generator.
func (s *Synthesizer) generateScalar(fieldType string, rule *generator.Rule) any {
	if rule != nil && rule.Group != "" {
		return s.registry.Generate(*rule)
	}
	return s.registry.Generate(generator.Rule{Group: defaultGroup(fieldType)})
}

// defaultGroup maps a schema type to its rule family tag: string →
// StringRules, number → NumberRules, and so on.
func defaultGroup(fieldType string) string {
	if fieldType == "" {
		fieldType = "string"
	}
	return strings.ToUpper(fieldType[:1]) + fieldType[1:] + "Rules"
}

// buildTopic resolves the topic template. Mappings run strictly before
// independent parameter generation so a parameter satisfied by a mapping
// is never generated twice. Unresolved placeholders stay literal.
func (s *Synthesizer) buildTopic(rule feed.Rule, payload *Object) string {
	topic := rule.Topic
	satisfied := make(map[string]bool)

	for _, mapping := range rule.Mappings {
		if mapping.Target.Type != feed.TargetTopicParameter {
			continue
		}

		value, ok := feed.ResolvePath(payload, mapping.Source.FieldName)
		if !ok {
			s.logger.Warn("mapping source field not found in payload",
				"event", rule.EventName,
				"field", mapping.Source.FieldName)
			continue
		}

		topic = strings.ReplaceAll(topic, "{"+mapping.Target.FieldName+"}", feed.Stringify(value))
		satisfied[mapping.Target.FieldName] = true
	}

	for name, param := range rule.TopicParameters {
		if satisfied[name] {
			continue
		}
		placeholder := "{" + name + "}"
		if !strings.Contains(topic, placeholder) {
			continue
		}
		value := s.registry.Generate(param.Rule)
		topic = strings.ReplaceAll(topic, placeholder, feed.Stringify(value))
	}

	if strings.Contains(topic, "{") {
		s.logger.Debug("topic has unresolved placeholders",
			"event", rule.EventName,
			"topic", topic)
	}

	return topic
}
