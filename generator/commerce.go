package generator

import "fmt"

func commerceRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"companyName":        genCompanyName,
		"department":         genDepartment,
		"isbn":               genISBN,
		"price":              genPrice,
		"product":            genProduct,
		"productDescription": genProductDescription,
		"productName":        genProductName,
	}
}

func genCompanyName(_ Rule) any {
	return fmt.Sprintf("%s %s", pick(lastNames), pick(companySuffixes))
}

func genDepartment(_ Rule) any {
	return pick(departments)
}

func genISBN(_ Rule) any {
	return fmt.Sprintf("978-%s-%s-%s-%s",
		randomString(1, digitChars), randomString(2, digitChars),
		randomString(6, digitChars), randomString(1, digitChars))
}

// genPrice returns a money string with two fractional digits, default
// bounds 1 to 1000.
func genPrice(r Rule) any {
	return fmt.Sprintf("%.2f", floatIn(r.Minimum, r.Maximum, 1, 1000))
}

func genProduct(_ Rule) any {
	return pick(products)
}

func genProductDescription(_ Rule) any {
	return fmt.Sprintf("The %s %s %s offers reliable performance and %s design",
		pick(productAdjectives), pick(productMaterials), pick(products),
		pick([]string{"practical", "modern", "rugged", "minimalist", "ergonomic"}))
}

func genProductName(_ Rule) any {
	return fmt.Sprintf("%s %s %s", pick(productAdjectives), pick(productMaterials), pick(products))
}
