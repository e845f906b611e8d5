package generator

import (
	"strconv"
	"strings"
)

// FlexInt is an integer that tolerates being encoded as a JSON string.
// Community feed files carry numeric options like fractionDigits both ways.
type FlexInt int

// UnmarshalJSON accepts 2, "2", "" and null.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the value as a plain int.
func (f FlexInt) Int() int {
	return int(f)
}

// Rule describes how to synthesize one value. Group selects the rule
// family, Rule the specific generator within it. The remaining fields are
// family-specific options; unused fields are ignored by the handler.
type Rule struct {
	Group          string   `json:"group,omitempty"`
	Rule           string   `json:"rule,omitempty"`
	MinLength      int      `json:"minLength,omitempty"`
	MaxLength      int      `json:"maxLength,omitempty"`
	Casing         string   `json:"casing,omitempty"`
	Enum           []any    `json:"enum,omitempty"`
	Count          int      `json:"count,omitempty"`
	LeadingZeros   bool     `json:"leadingZeros,omitempty"`
	Pattern        string   `json:"pattern,omitempty"`
	Minimum        float64  `json:"minimum,omitempty"`
	Maximum        float64  `json:"maximum,omitempty"`
	FractionDigits FlexInt  `json:"fractionDigits,omitempty"`
	Precision      FlexInt  `json:"precision,omitempty"`
	Years          int      `json:"years,omitempty"`
	Days           int      `json:"days,omitempty"`
	Abbreviated    bool     `json:"abbreviated,omitempty"`
}

// Rule family tags as they appear in feed rule files.
const (
	GroupString   = "StringRules"
	GroupNull     = "NullRules"
	GroupNumber   = "NumberRules"
	GroupBoolean  = "BooleanRules"
	GroupDate     = "DateRules"
	GroupLorem    = "LoremRules"
	GroupPerson   = "PersonRules"
	GroupLocation = "LocationRules"
	GroupFinance  = "FinanceRules"
	GroupAirline  = "AirlineRules"
	GroupCommerce = "CommerceRules"
)
