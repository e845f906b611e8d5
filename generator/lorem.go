package generator

import "strings"

func loremRules() map[string]GenerateFunc {
	return map[string]GenerateFunc{
		"lines":     genLoremLines,
		"paragraph": genLoremParagraphs,
		"sentence":  genLoremSentence,
		"text":      genLoremText,
		"word":      genLoremWord,
	}
}

// sentence builds a capitalized sentence of n lorem words.
func sentence(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = pick(loremWords)
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func paragraph() string {
	sentences := make([]string, 3)
	for i := range sentences {
		sentences[i] = sentence(intIn(5, 12, 0))
	}
	return strings.Join(sentences, " ")
}

func genLoremLines(r Rule) any {
	count := intIn(int(r.Minimum), int(r.Maximum), 0)
	if count <= 0 {
		count = intIn(1, 5, 0)
	}
	lines := make([]string, count)
	for i := range lines {
		lines[i] = sentence(intIn(3, 10, 0))
	}
	return strings.Join(lines, "\n")
}

func genLoremParagraphs(r Rule) any {
	count := intIn(int(r.Minimum), int(r.Maximum), 0)
	if count <= 0 {
		count = 3
	}
	paras := make([]string, count)
	for i := range paras {
		paras[i] = paragraph()
	}
	return strings.Join(paras, "\n")
}

func genLoremSentence(r Rule) any {
	n := intIn(int(r.Minimum), int(r.Maximum), 0)
	if n <= 0 {
		n = intIn(3, 10, 0)
	}
	return sentence(n)
}

func genLoremText(_ Rule) any {
	return paragraph()
}

// genLoremWord picks a word whose length falls within the declared bounds
// when possible, any word otherwise.
func genLoremWord(r Rule) any {
	min, max := int(r.Minimum), int(r.Maximum)
	if min <= 0 && max <= 0 {
		return pick(loremWords)
	}
	if max < min {
		max = min
	}
	candidates := make([]string, 0, len(loremWords))
	for _, w := range loremWords {
		if len(w) >= min && (max == 0 || len(w) <= max) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return pick(loremWords)
	}
	return pick(candidates)
}
