package generator

import (
	"math"
	"math/rand"
)

func numberRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"int":   genInt,
		"float": genFloat,
	}
}

func nullRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"null":  genNull,
		"empty": genEmpty,
	}
}

func booleanRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"boolean": genBoolean,
	}
}

func genInt(r Rule) any {
	return intIn(int(r.Minimum), int(r.Maximum), 1000)
}

func genFloat(r Rule) any {
	v := floatIn(r.Minimum, r.Maximum, 0, 1)
	if digits := r.FractionDigits.Int(); digits > 0 {
		p := math.Pow10(digits)
		v = math.Round(v*p) / p
	}
	return v
}

func genNull(_ Rule) any {
	return nil
}

func genEmpty(_ Rule) any {
	return ""
}

func genBoolean(_ Rule) any {
	return rand.Intn(2) == 1
}
