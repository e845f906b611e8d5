package generator

import (
	"fmt"
	"math/rand"
)

func financeRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"accountNumber":          genAccountNumber,
		"amount":                 genAmount,
		"swiftOrBic":             genSwiftOrBic,
		"creditCardNumber":       genCreditCardNumber,
		"currencyCode":           genCurrencyCode,
		"currencyName":           genCurrencyName,
		"currencySymbol":         genCurrencySymbol,
		"bitcoinAddress":         genBitcoinAddress,
		"ethereumAddress":        genEthereumAddress,
		"transactionDescription": genTransactionDescription,
		"transactionType":        genTransactionType,
	}
}

func genAccountNumber(_ Rule) any {
	return randomString(8, digitChars)
}

// genAmount returns a money string with two fractional digits, matching the
// wire shape feed consumers expect for amounts.
func genAmount(r Rule) any {
	return fmt.Sprintf("%.2f", floatIn(r.Minimum, r.Maximum, 0, 1000))
}

func genSwiftOrBic(_ Rule) any {
	return randomString(4, upperChars) + pick(countryCodes) + randomString(2, upperChars+digitChars)
}

func genCreditCardNumber(_ Rule) any {
	return fmt.Sprintf("%s-%s-%s-%s",
		randomString(4, digitChars), randomString(4, digitChars),
		randomString(4, digitChars), randomString(4, digitChars))
}

func genCurrencyCode(_ Rule) any {
	return pick(currencies).code
}

func genCurrencyName(_ Rule) any {
	return pick(currencies).name
}

func genCurrencySymbol(_ Rule) any {
	return pick(currencies).symbol
}

func genBitcoinAddress(_ Rule) any {
	return pick([]string{"1", "3"}) + randomString(25+rand.Intn(10), base58Chars)
}

func genEthereumAddress(_ Rule) any {
	return "0x" + randomString(40, hexChars)
}

func genTransactionDescription(_ Rule) any {
	cur := pick(currencies)
	return fmt.Sprintf("%s transaction at %s using card ending with ***%s for %.2f %s in account ***%s",
		pick(transactionTypes),
		fmt.Sprintf("%s %s", pick(lastNames), pick(companySuffixes)),
		randomString(4, digitChars),
		floatIn(0, 0, 1, 1000),
		cur.code,
		randomString(8, digitChars))
}

func genTransactionType(_ Rule) any {
	return pick(transactionTypes)
}
