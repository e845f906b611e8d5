package generator

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenInt_Bounds(t *testing.T) {
	reg := NewRegistry()

	rule := Rule{Group: GroupNumber, Rule: "int", Minimum: 10, Maximum: 20}
	for i := 0; i < samples; i++ {
		n := reg.Generate(rule).(int)
		assert.GreaterOrEqual(t, n, 10)
		assert.LessOrEqual(t, n, 20)
	}
}

func TestGenInt_DegenerateBounds(t *testing.T) {
	reg := NewRegistry()

	// min == max pins the value
	n := reg.Generate(Rule{Group: GroupNumber, Rule: "int", Minimum: 7, Maximum: 7}).(int)
	assert.Equal(t, 7, n)
}

func TestGenFloat_BoundsAndFractionDigits(t *testing.T) {
	reg := NewRegistry()

	rule := Rule{Group: GroupNumber, Rule: "float", Minimum: 1, Maximum: 2, FractionDigits: 2}
	for i := 0; i < samples; i++ {
		f := reg.Generate(rule).(float64)
		assert.GreaterOrEqual(t, f, 1.0)
		assert.LessOrEqual(t, f, 2.0)
		assert.Equal(t, math.Round(f*100)/100, f)
	}
}

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{`2`, 2, false},
		{`"3"`, 3, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
	}

	for _, tt := range tests {
		var f FlexInt
		err := f.UnmarshalJSON([]byte(tt.input))
		if tt.wantErr {
			assert.Error(t, err, "input %s", tt.input)
			continue
		}
		require.NoError(t, err, "input %s", tt.input)
		assert.Equal(t, tt.expected, f.Int(), "input %s", tt.input)
	}
}

func TestNullFamily(t *testing.T) {
	reg := NewRegistry()

	assert.Nil(t, reg.Generate(Rule{Group: GroupNull, Rule: "null"}))
	assert.Equal(t, "", reg.Generate(Rule{Group: GroupNull, Rule: "empty"}))
}

func TestDateRules_Ordering(t *testing.T) {
	reg := NewRegistry()
	now := time.Now()

	parse := func(rule string, years, days int) time.Time {
		s := reg.Generate(Rule{Group: GroupDate, Rule: rule, Years: years, Days: days}).(string)
		parsed, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err, "rule %s produced %q", rule, s)
		return parsed
	}

	for i := 0; i < 100; i++ {
		assert.True(t, parse("future", 1, 0).After(now), "future date must be after now")
		assert.True(t, parse("past", 1, 0).Before(now), "past date must be before now")

		recent := parse("recent", 0, 5)
		assert.True(t, recent.Before(now.Add(time.Second)))
		assert.True(t, recent.After(now.Add(-6*24*time.Hour)))

		soon := parse("soon", 0, 5)
		assert.True(t, soon.After(now))
		assert.True(t, soon.Before(now.Add(6*24*time.Hour)))
	}
}

func TestDateRules_MonthAndWeekday(t *testing.T) {
	reg := NewRegistry()

	month := reg.Generate(Rule{Group: GroupDate, Rule: "month"}).(string)
	assert.Contains(t, monthNames, month)

	abbrev := reg.Generate(Rule{Group: GroupDate, Rule: "month", Abbreviated: true}).(string)
	assert.Contains(t, monthAbbrevs, abbrev)

	weekday := reg.Generate(Rule{Group: GroupDate, Rule: "weekday"}).(string)
	assert.Contains(t, weekdayNames, weekday)
}

func TestLoremRules(t *testing.T) {
	reg := NewRegistry()

	lines := reg.Generate(Rule{Group: GroupLorem, Rule: "lines", Minimum: 2, Maximum: 2}).(string)
	assert.Len(t, strings.Split(lines, "\n"), 2)

	sentence := reg.Generate(Rule{Group: GroupLorem, Rule: "sentence", Minimum: 4, Maximum: 4}).(string)
	assert.True(t, strings.HasSuffix(sentence, "."))
	assert.Len(t, strings.Fields(sentence), 4)

	word := reg.Generate(Rule{Group: GroupLorem, Rule: "word", Minimum: 5, Maximum: 6}).(string)
	assert.GreaterOrEqual(t, len(word), 5)
	assert.LessOrEqual(t, len(word), 6)
}

func TestPersonRules(t *testing.T) {
	reg := NewRegistry()

	full := reg.Generate(Rule{Group: GroupPerson, Rule: "fullName"}).(string)
	parts := strings.Fields(full)
	require.Len(t, parts, 2)
	assert.Contains(t, firstNames, parts[0])
	assert.Contains(t, lastNames, parts[1])

	sex := reg.Generate(Rule{Group: GroupPerson, Rule: "sex"}).(string)
	assert.Contains(t, sexes, sex)

	title := reg.Generate(Rule{Group: GroupPerson, Rule: "jobTitle"}).(string)
	assert.Len(t, strings.Fields(title), 3)
}

func TestLocationRules(t *testing.T) {
	reg := NewRegistry()

	city := reg.Generate(Rule{Group: GroupLocation, Rule: "city"}).(string)
	assert.Contains(t, cityNames, city)

	zip := reg.Generate(Rule{Group: GroupLocation, Rule: "zipCode"}).(string)
	assert.Len(t, zip, 5)

	// country and countryCode both resolve to a country code
	country := reg.Generate(Rule{Group: GroupLocation, Rule: "country"}).(string)
	assert.Contains(t, countryCodes, country)

	for i := 0; i < samples; i++ {
		lat := reg.Generate(Rule{Group: GroupLocation, Rule: "latitude"}).(float64)
		assert.GreaterOrEqual(t, lat, -90.0)
		assert.LessOrEqual(t, lat, 90.0)

		lon := reg.Generate(Rule{Group: GroupLocation, Rule: "longitude", Minimum: -10, Maximum: 10}).(float64)
		assert.GreaterOrEqual(t, lon, -10.0)
		assert.LessOrEqual(t, lon, 10.0)
	}
}

func TestFinanceRules(t *testing.T) {
	reg := NewRegistry()

	amount := reg.Generate(Rule{Group: GroupFinance, Rule: "amount", Minimum: 10, Maximum: 20}).(string)
	f, err := strconv.ParseFloat(amount, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f, 10.0)
	assert.LessOrEqual(t, f, 20.0)

	eth := reg.Generate(Rule{Group: GroupFinance, Rule: "ethereumAddress"}).(string)
	assert.True(t, strings.HasPrefix(eth, "0x"))
	assert.Len(t, eth, 42)

	btc := reg.Generate(Rule{Group: GroupFinance, Rule: "bitcoinAddress"}).(string)
	assert.Contains(t, []byte{'1', '3'}, btc[0])

	code := reg.Generate(Rule{Group: GroupFinance, Rule: "currencyCode"}).(string)
	assert.Len(t, code, 3)

	txType := reg.Generate(Rule{Group: GroupFinance, Rule: "transactionType"}).(string)
	assert.Contains(t, transactionTypes, txType)
}

func TestAirlineRules(t *testing.T) {
	reg := NewRegistry()

	carrier, ok := reg.Generate(Rule{Group: GroupAirline, Rule: "airline"}).(map[string]any)
	require.True(t, ok, "airline rule must produce a structured value")
	assert.NotEmpty(t, carrier["name"])
	assert.NotEmpty(t, carrier["iataCode"])

	airport := reg.Generate(Rule{Group: GroupAirline, Rule: "airport"}).(string)
	assert.Contains(t, airport, "[")
	assert.Contains(t, airport, "]")

	code := reg.Generate(Rule{Group: GroupAirline, Rule: "airportCode"}).(string)
	assert.Len(t, code, 3)

	for i := 0; i < samples; i++ {
		fn := reg.Generate(Rule{Group: GroupAirline, Rule: "flightNumber", Minimum: 3, Maximum: 4}).(string)
		assert.GreaterOrEqual(t, len(fn), 3)
		assert.LessOrEqual(t, len(fn), 4)
		assert.NotEqual(t, byte('0'), fn[0])
	}
}

func TestCommerceRules(t *testing.T) {
	reg := NewRegistry()

	price := reg.Generate(Rule{Group: GroupCommerce, Rule: "price", Minimum: 5, Maximum: 10}).(string)
	f, err := strconv.ParseFloat(price, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f, 5.0)
	assert.LessOrEqual(t, f, 10.0)

	isbn := reg.Generate(Rule{Group: GroupCommerce, Rule: "isbn"}).(string)
	assert.True(t, strings.HasPrefix(isbn, "978-"))

	name := reg.Generate(Rule{Group: GroupCommerce, Rule: "productName"}).(string)
	assert.Len(t, strings.Fields(name), 3)

	dept := reg.Generate(Rule{Group: GroupCommerce, Rule: "department"}).(string)
	assert.Contains(t, departments, dept)
}
