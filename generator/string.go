package generator

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

func stringRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"alpha":        genAlpha,
		"alphanumeric": genAlphanumeric,
		"enum":         genEnum,
		"words":        genWords,
		"nanoid":       genNanoid,
		"numeric":      genNumericString,
		"symbol":       genSymbol,
		"uuid":         genUUID,
		"fromRegExp":   genFromRegExp,
		"phoneNumber":  genPhoneNumber,
		"json":         genJSONString,
	}
}

// casedAlphabet maps the casing directive to an alphabet. Anything other
// than upper or lower means mixed case.
func casedAlphabet(casing string) string {
	switch casing {
	case "upper":
		return upperChars
	case "lower":
		return lowerChars
	default:
		return lowerChars + upperChars
	}
}

func genAlpha(r Rule) any {
	n := lengthIn(r.MinLength, r.MaxLength, 1)
	return randomString(n, casedAlphabet(r.Casing))
}

// genAlphaDefault is the String family default: a 10-character alphabetic
// string, independent of any length bounds on the rule.
func genAlphaDefault(_ Rule) any {
	return randomString(10, lowerChars+upperChars)
}

func genAlphanumeric(r Rule) any {
	n := lengthIn(r.MinLength, r.MaxLength, 1)
	return randomString(n, casedAlphabet(r.Casing)+digitChars)
}

func genEnum(r Rule) any {
	if len(r.Enum) == 0 {
		return ""
	}
	return pick(r.Enum)
}

func genWords(r Rule) any {
	count := r.Count
	if count <= 0 {
		count = 3
	}
	words := make([]string, count)
	for i := range words {
		words[i] = pick(loremWords)
	}
	return strings.Join(words, " ")
}

func genNanoid(r Rule) any {
	n := lengthIn(r.MinLength, r.MaxLength, 21)
	return randomString(n, nanoidChars)
}

func genNumericString(r Rule) any {
	n := lengthIn(r.MinLength, r.MaxLength, 1)
	s := randomString(n, digitChars)
	if !r.LeadingZeros && n > 0 {
		// Replace a leading zero so the digit string parses without loss
		s = randomString(1, "123456789") + s[1:]
	}
	return s
}

func genSymbol(r Rule) any {
	n := lengthIn(r.MinLength, r.MaxLength, 1)
	return randomString(n, symbolChars)
}

func genUUID(_ Rule) any {
	return uuid.NewString()
}

func genFromRegExp(r Rule) any {
	return FromPattern(r.Pattern)
}

func genPhoneNumber(_ Rule) any {
	return fmt.Sprintf("(%d%s) %s-%s",
		2+rand.Intn(8), randomString(2, digitChars),
		randomString(3, digitChars), randomString(4, digitChars))
}

func genJSONString(_ Rule) any {
	doc := map[string]any{
		pick(loremWords): rand.Intn(100000),
		pick(loremWords): randomString(8, lowerChars),
		pick(loremWords): rand.Intn(2) == 1,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(b)
}
