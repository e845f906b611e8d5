package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserProperties(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "simple pairs",
			input:    "env:prod team:payments",
			expected: map[string]string{"env": "prod", "team": "payments"},
		},
		{
			name:     "double quoted value with spaces",
			input:    `note:"hello world" env:dev`,
			expected: map[string]string{"note": "hello world", "env": "dev"},
		},
		{
			name:     "single quoted value with spaces",
			input:    "owner:'Jane Doe'",
			expected: map[string]string{"owner": "Jane Doe"},
		},
		{
			name:     "quoted key",
			input:    `'my key':value`,
			expected: map[string]string{"my key": "value"},
		},
		{
			name:     "malformed token dropped",
			input:    "env:prod brokentoken team:core",
			expected: map[string]string{"env": "prod", "team": "core"},
		},
		{
			name:     "empty value kept",
			input:    "flag:",
			expected: map[string]string{"flag": ""},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "only malformed tokens",
			input:    "nope also-nope",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseUserProperties(tt.input))
		})
	}
}
