package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_InstallsAllFamilies(t *testing.T) {
	reg := NewRegistry()

	expected := []string{
		GroupAirline, GroupBoolean, GroupCommerce, GroupDate, GroupFinance,
		GroupLocation, GroupLorem, GroupNull, GroupNumber, GroupPerson,
		GroupString,
	}
	assert.Equal(t, expected, reg.Families())
}

func TestRegistry_Knows(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		group    string
		rule     string
		expected bool
	}{
		{GroupString, "alpha", true},
		{GroupString, "uuid", true},
		{GroupString, "", true}, // empty rule resolves to family default
		{GroupString, "nonsense", false},
		{GroupNumber, "int", true},
		{GroupAirline, "flightNumber", true},
		{"WeatherRules", "temperature", false},
	}

	for _, tt := range tests {
		if got := reg.Knows(tt.group, tt.rule); got != tt.expected {
			t.Errorf("Knows(%q, %q) = %v, want %v", tt.group, tt.rule, got, tt.expected)
		}
	}
}

func TestRegistry_Rules(t *testing.T) {
	reg := NewRegistry()

	rules, ok := reg.Rules(GroupNull)
	require.True(t, ok)
	assert.Equal(t, []string{"empty", "null"}, rules)

	_, ok = reg.Rules("WeatherRules")
	assert.False(t, ok)
}

func TestGenerate_UnknownFamily(t *testing.T) {
	reg := NewRegistry()

	value := reg.Generate(Rule{Group: "WeatherRules", Rule: "temperature"})
	assert.Equal(t, NoRuleGroupFound, value)
}

func TestGenerate_UnknownRuleFallsBackToFamilyDefault(t *testing.T) {
	reg := NewRegistry()

	// String family default is a 10-character alphabetic string
	value := reg.Generate(Rule{Group: GroupString, Rule: "doesNotExist"})
	s, ok := value.(string)
	require.True(t, ok)
	assert.Len(t, s, 10)

	// Null family default
	assert.Nil(t, reg.Generate(Rule{Group: GroupNull, Rule: "doesNotExist"}))

	// Boolean family default
	_, ok = reg.Generate(Rule{Group: GroupBoolean, Rule: "doesNotExist"}).(bool)
	assert.True(t, ok)
}

func TestGenerate_EmptyRuleUsesDefaultWithoutFallbackHook(t *testing.T) {
	var fallbacks []string
	reg := NewRegistry(WithFallbackHook(func(group string) {
		fallbacks = append(fallbacks, group)
	}))

	// Empty rule name is the synthesizer's default-rule path, not a
	// degradation, so the hook must stay silent
	reg.Generate(Rule{Group: GroupNumber})
	assert.Empty(t, fallbacks)

	// Unknown rule within a known family triggers the hook
	reg.Generate(Rule{Group: GroupNumber, Rule: "doesNotExist"})
	assert.Equal(t, []string{GroupNumber}, fallbacks)

	// Unknown family triggers it too
	reg.Generate(Rule{Group: "WeatherRules"})
	assert.Equal(t, []string{GroupNumber, "WeatherRules"}, fallbacks)
}

func TestGenerate_AllKnownRulesProduceValues(t *testing.T) {
	reg := NewRegistry()

	for _, group := range reg.Families() {
		rules, ok := reg.Rules(group)
		require.True(t, ok)

		for _, rule := range rules {
			value := reg.Generate(Rule{
				Group: group,
				Rule:  rule,
				Enum:  []any{"a", "b"},
			})
			if group == GroupNull && rule == "null" {
				assert.Nil(t, value)
				continue
			}
			assert.NotNil(t, value, "%s.%s should produce a value", group, rule)
		}
	}
}
