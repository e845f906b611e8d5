package generator

import (
	"math/rand"
	"strconv"
	"strings"
)

// FromPattern synthesizes a string matching a simplified regex-like
// grammar. Supported constructs:
//
//   - literal characters
//   - escapes: \d (digit), \w (word character), \s (space), \X (literal X)
//   - character classes: [abc], [a-z0-9] (ranges, no negation)
//   - quantifiers on the preceding atom: {n}, {n,m}, ? (0 or 1),
//     * (0 to 2), + (1 to 3)
//   - anchors ^ and $ are accepted and ignored
//
// Unsupported constructs are treated as literals. Repetition counts for
// unbounded quantifiers are intentionally small so generated values stay
// readable in topic strings.
func FromPattern(pattern string) string {
	var out strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '^' || r == '$' {
			i++
			continue
		}

		var atom func() rune
		switch r {
		case '\\':
			if i+1 >= len(runes) {
				i++
				continue
			}
			atom = escapeAtom(runes[i+1])
			i += 2
		case '[':
			class, next := parseClass(runes, i+1)
			atom = class
			i = next
		default:
			lit := r
			atom = func() rune { return lit }
			i++
		}

		count := 1
		if i < len(runes) {
			count, i = parseQuantifier(runes, i)
		}

		for n := 0; n < count; n++ {
			out.WriteRune(atom())
		}
	}

	return out.String()
}

func escapeAtom(r rune) func() rune {
	switch r {
	case 'd':
		return func() rune { return rune(digitChars[rand.Intn(len(digitChars))]) }
	case 'w':
		const wordChars = lowerChars + upperChars + digitChars + "_"
		return func() rune { return rune(wordChars[rand.Intn(len(wordChars))]) }
	case 's':
		return func() rune { return ' ' }
	default:
		return func() rune { return r }
	}
}

// parseClass reads a [...] character class starting after the opening
// bracket and returns an atom drawing uniformly from its members.
func parseClass(runes []rune, start int) (func() rune, int) {
	var members []rune
	i := start

	for i < len(runes) && runes[i] != ']' {
		// Range like a-z needs a character on both sides
		if i+2 < len(runes) && runes[i+1] == '-' && runes[i+2] != ']' {
			for c := runes[i]; c <= runes[i+2]; c++ {
				members = append(members, c)
			}
			i += 3
			continue
		}
		members = append(members, runes[i])
		i++
	}
	if i < len(runes) {
		i++ // consume closing bracket
	}

	if len(members) == 0 {
		return func() rune { return '?' }, i
	}
	return func() rune { return members[rand.Intn(len(members))] }, i
}

// parseQuantifier reads an optional quantifier at position i and returns
// the repetition count plus the next position.
func parseQuantifier(runes []rune, i int) (int, int) {
	switch runes[i] {
	case '?':
		return rand.Intn(2), i + 1
	case '*':
		return rand.Intn(3), i + 1
	case '+':
		return 1 + rand.Intn(3), i + 1
	case '{':
		end := i + 1
		for end < len(runes) && runes[end] != '}' {
			end++
		}
		if end >= len(runes) {
			return 1, i
		}
		spec := string(runes[i+1 : end])
		min, max, ok := parseBounds(spec)
		if !ok {
			return 1, i
		}
		return min + rand.Intn(max-min+1), end + 1
	default:
		return 1, i
	}
}

func parseBounds(spec string) (min, max int, ok bool) {
	parts := strings.SplitN(spec, ",", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || min < 0 {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return min, min, true
	}
	max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || max < min {
		return 0, 0, false
	}
	return min, max, true
}
