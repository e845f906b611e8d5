package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 1000

func TestGenAlpha_BoundsAndCasing(t *testing.T) {
	reg := NewRegistry()

	rule := Rule{Group: GroupString, Rule: "alpha", MinLength: 3, MaxLength: 8, Casing: "upper"}
	for i := 0; i < samples; i++ {
		s := reg.Generate(rule).(string)
		assert.GreaterOrEqual(t, len(s), 3)
		assert.LessOrEqual(t, len(s), 8)
		assert.Equal(t, strings.ToUpper(s), s)
		for _, r := range s {
			assert.True(t, r >= 'A' && r <= 'Z', "unexpected character %q", r)
		}
	}
}

func TestGenAlphanumeric_LowerCasing(t *testing.T) {
	reg := NewRegistry()

	rule := Rule{Group: GroupString, Rule: "alphanumeric", MinLength: 5, MaxLength: 5, Casing: "lower"}
	for i := 0; i < samples; i++ {
		s := reg.Generate(rule).(string)
		require.Len(t, s, 5)
		for _, r := range s {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			assert.True(t, ok, "unexpected character %q", r)
		}
	}
}

func TestGenEnum_MembershipOnly(t *testing.T) {
	reg := NewRegistry()

	members := []any{"sedan", "coupe", "wagon"}
	seen := make(map[any]bool)
	rule := Rule{Group: GroupString, Rule: "enum", Enum: members}

	for i := 0; i < samples; i++ {
		v := reg.Generate(rule)
		assert.Contains(t, members, v)
		seen[v] = true
	}

	// Uniform selection over 1000 draws should hit every member
	assert.Len(t, seen, len(members))
}

func TestGenEnum_EmptySet(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, "", reg.Generate(Rule{Group: GroupString, Rule: "enum"}))
}

func TestGenNumericString_NoLeadingZeros(t *testing.T) {
	reg := NewRegistry()

	rule := Rule{Group: GroupString, Rule: "numeric", MinLength: 4, MaxLength: 4}
	for i := 0; i < samples; i++ {
		s := reg.Generate(rule).(string)
		require.Len(t, s, 4)
		assert.NotEqual(t, byte('0'), s[0])
	}
}

func TestGenUUID(t *testing.T) {
	reg := NewRegistry()

	s := reg.Generate(Rule{Group: GroupString, Rule: "uuid"}).(string)
	_, err := uuid.Parse(s)
	assert.NoError(t, err)
}

func TestGenWords_Count(t *testing.T) {
	reg := NewRegistry()

	s := reg.Generate(Rule{Group: GroupString, Rule: "words", Count: 5}).(string)
	assert.Len(t, strings.Fields(s), 5)

	// Default count is 3
	s = reg.Generate(Rule{Group: GroupString, Rule: "words"}).(string)
	assert.Len(t, strings.Fields(s), 3)
}

func TestGenNanoid_Length(t *testing.T) {
	reg := NewRegistry()

	s := reg.Generate(Rule{Group: GroupString, Rule: "nanoid"}).(string)
	assert.Len(t, s, 21)

	s = reg.Generate(Rule{Group: GroupString, Rule: "nanoid", MinLength: 10, MaxLength: 10}).(string)
	assert.Len(t, s, 10)
}

func TestGenJSONString_ParsesBack(t *testing.T) {
	reg := NewRegistry()

	s := reg.Generate(Rule{Group: GroupString, Rule: "json"}).(string)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	assert.NotEmpty(t, doc)
}

func TestGenPhoneNumber_Shape(t *testing.T) {
	reg := NewRegistry()

	s := reg.Generate(Rule{Group: GroupString, Rule: "phoneNumber"}).(string)
	// (###) ###-####
	assert.Len(t, s, 14)
	assert.Equal(t, byte('('), s[0])
	assert.Equal(t, byte(')'), s[4])
	assert.Equal(t, byte('-'), s[9])
}
