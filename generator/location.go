package generator

import (
	"fmt"
	"math"
	"math/rand"
)

func locationRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"buildingNumber": genBuildingNumber,
		"street":         genStreet,
		"streetAddress":  genStreetAddress,
		"city":           genCity,
		"state":          genState,
		"zipCode":        genZipCode,
		"country":        genCountryCode,
		"countryCode":    genCountryCode,
		"latitude":       genLatitude,
		"longitude":      genLongitude,
		"timeZone":       genTimeZone,
	}
}

func genBuildingNumber(_ Rule) any {
	return fmt.Sprintf("%d", 1+rand.Intn(9999))
}

func genStreet(_ Rule) any {
	return fmt.Sprintf("%s %s", pick(streetNames), pick(streetSuffixes))
}

func genStreetAddress(r Rule) any {
	return fmt.Sprintf("%s %s", genBuildingNumber(r), genStreet(r))
}

func genCity(_ Rule) any {
	return pick(cityNames)
}

func genState(_ Rule) any {
	return pick(stateNames)
}

func genZipCode(_ Rule) any {
	return randomString(5, digitChars)
}

func genCountryCode(_ Rule) any {
	return pick(countryCodes)
}

// coordinate draws a value in [min, max] rounded to the declared precision
// (default 4 fractional digits).
func coordinate(r Rule, defMin, defMax float64) float64 {
	v := floatIn(r.Minimum, r.Maximum, defMin, defMax)
	digits := r.Precision.Int()
	if digits <= 0 {
		digits = 4
	}
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

func genLatitude(r Rule) any {
	return coordinate(r, -90, 90)
}

func genLongitude(r Rule) any {
	return coordinate(r, -180, 180)
}

func genTimeZone(_ Rule) any {
	return pick(timeZones)
}
