package feed

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ruleSchema is the JSON Schema every feed rule must satisfy before typed
// decoding. It pins down the required identity fields and the shape of
// mappings and publish settings; payload nodes stay open because rule
// families evolve faster than this schema.
const ruleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["topic", "eventName", "payload"],
  "properties": {
    "topic": {"type": "string", "minLength": 1},
    "eventName": {"type": "string", "minLength": 1},
    "eventVersion": {"type": ["string", "number"]},
    "messageName": {"type": "string"},
    "topicParameters": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["rule"],
        "properties": {
          "rule": {
            "type": "object",
            "required": ["group"],
            "properties": {
              "group": {"type": "string", "minLength": 1},
              "rule": {"type": "string"}
            }
          }
        }
      }
    },
    "payload": {"type": "object"},
    "mappings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source": {
            "type": "object",
            "required": ["fieldName"],
            "properties": {"fieldName": {"type": "string", "minLength": 1}}
          },
          "target": {
            "type": "object",
            "required": ["fieldName"],
            "properties": {
              "type": {"type": "string"},
              "fieldName": {"type": "string", "minLength": 1}
            }
          }
        }
      }
    },
    "publishSettings": {
      "type": "object",
      "properties": {
        "count": {"type": ["integer", "string"]},
        "interval": {"type": ["number", "string"]},
        "delay": {"type": ["integer", "string"]}
      }
    },
    "messageSettings": {
      "type": "object",
      "properties": {
        "dmqEligible": {"type": "boolean"},
        "timeToLive": {"type": ["integer", "string"]},
        "appMessageId": {"type": "string"},
        "userProperties": {"type": "string"},
        "partitionKeys": {"type": "string"}
      }
    }
  }
}`

var compiledRuleSchema = gojsonschema.NewStringLoader(ruleSchema)

// validateRule checks one raw rule document against the schema and returns
// a single descriptive error listing every violation.
func validateRule(raw []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(compiledRuleSchema, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("schema validation: %s", strings.Join(violations, "; "))
}
