package generator

import "fmt"

func airlineRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"airline":      genAirline,
		"airplane":     genAirplane,
		"airport":      genAirport,
		"airportName":  genAirportName,
		"airportCode":  genAirportCode,
		"flightNumber": genFlightNumber,
	}
}

// genAirline returns the carrier as a structured value; feed consumers see
// it as an object with name and iataCode fields.
func genAirline(_ Rule) any {
	a := pick(airlines)
	return map[string]any{
		"name":     a.name,
		"iataCode": a.iataCode,
	}
}

func genAirplane(_ Rule) any {
	a := pick(airplanes)
	return fmt.Sprintf("%s [%s]", a.name, a.iataTypeCode)
}

func genAirport(_ Rule) any {
	a := pick(airports)
	return fmt.Sprintf("%s [%s]", a.name, a.iataCode)
}

func genAirportName(_ Rule) any {
	return pick(airports).name
}

func genAirportCode(_ Rule) any {
	return pick(airports).iataCode
}

// genFlightNumber builds a digit string whose length falls within the
// declared bounds, capped at 4 digits. Leading zeros are only allowed when
// the rule asks for them.
func genFlightNumber(r Rule) any {
	n := lengthIn(int(r.Minimum), int(r.Maximum), 4)
	if n > 4 {
		n = 4
	}
	s := randomString(n, digitChars)
	if !r.LeadingZeros && n > 0 {
		s = randomString(1, "123456789") + s[1:]
	}
	return s
}
