package generator

import "fmt"

func personRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"prefix":        genNamePrefix,
		"firstName":     genFirstName,
		"lastName":      genLastName,
		"middleName":    genMiddleName,
		"fullName":      genFullName,
		"suffix":        genNameSuffix,
		"sex":           genSex,
		"jobTitle":      genJobTitle,
		"jobDescriptor": genJobDescriptor,
		"jobType":       genJobType,
	}
}

func genNamePrefix(_ Rule) any {
	return pick(namePrefixes)
}

func genFirstName(_ Rule) any {
	return pick(firstNames)
}

func genLastName(_ Rule) any {
	return pick(lastNames)
}

func genMiddleName(_ Rule) any {
	return pick(firstNames)
}

func genFullName(_ Rule) any {
	return fmt.Sprintf("%s %s", pick(firstNames), pick(lastNames))
}

func genNameSuffix(_ Rule) any {
	return pick(nameSuffixes)
}

func genSex(_ Rule) any {
	return pick(sexes)
}

func genJobTitle(_ Rule) any {
	return fmt.Sprintf("%s %s %s", pick(jobDescriptors), pick(jobAreas), pick(jobTypes))
}

func genJobDescriptor(_ Rule) any {
	return pick(jobDescriptors)
}

func genJobType(_ Rule) any {
	return pick(jobTypes)
}
