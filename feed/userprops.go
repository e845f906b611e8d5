package feed

import "strings"

// spacePlaceholder stands in for spaces inside quoted segments while the
// settings string is split on unquoted spaces.
const spacePlaceholder = "\x00"

// ParseUserProperties parses the user-property mini-language: a
// space-delimited sequence of key:value tokens where single- or
// double-quoted segments may contain spaces. Malformed tokens (missing
// colon) are silently dropped. Returns nil when nothing parses.
func ParseUserProperties(spec string) map[string]string {
	if strings.TrimSpace(spec) == "" {
		return nil
	}

	masked := maskQuotedSpaces(spec)

	var props map[string]string
	for _, token := range strings.Fields(masked) {
		key, value, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		key = unquote(strings.ReplaceAll(key, spacePlaceholder, " "))
		value = unquote(strings.ReplaceAll(value, spacePlaceholder, " "))
		if key == "" {
			continue
		}
		if props == nil {
			props = make(map[string]string)
		}
		props[key] = value
	}

	return props
}

// maskQuotedSpaces replaces spaces inside quoted segments with a
// placeholder so Fields only splits on unquoted spaces.
func maskQuotedSpaces(s string) string {
	var out strings.Builder
	var quote rune

	for _, r := range s {
		switch {
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
			out.WriteRune(r)
		case quote != 0 && r == quote:
			quote = 0
			out.WriteRune(r)
		case quote != 0 && r == ' ':
			out.WriteString(spacePlaceholder)
		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
