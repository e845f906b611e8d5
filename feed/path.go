package feed

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Getter is implemented by ordered payload objects so path resolution can
// traverse them without depending on their concrete type.
type Getter interface {
	Get(key string) (any, bool)
}

// ResolvePath walks a dotted field path into a generated payload. A path
// segment suffixed [0] indexes the first element of an array field.
// Returns false when any segment is missing or not traversable.
func ResolvePath(payload any, path string) (any, bool) {
	current := payload

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, false
		}

		first := false
		if strings.HasSuffix(segment, "[0]") {
			first = true
			segment = strings.TrimSuffix(segment, "[0]")
		}

		value, ok := lookup(current, segment)
		if !ok {
			return nil, false
		}

		if first {
			arr, ok := value.([]any)
			if !ok || len(arr) == 0 {
				return nil, false
			}
			value = arr[0]
		}

		current = value
	}

	return current, true
}

func lookup(container any, key string) (any, bool) {
	switch c := container.(type) {
	case Getter:
		return c.Get(key)
	case map[string]any:
		v, ok := c[key]
		return v, ok
	default:
		return nil, false
	}
}

// ResolvePartitionKeys resolves a |-delimited list of field paths against
// the payload and joins the found values with "-". Missing paths are
// skipped; an empty result means no partition key applies.
func ResolvePartitionKeys(payload any, spec string) (string, bool) {
	if spec == "" {
		return "", false
	}

	var parts []string
	for _, path := range strings.Split(spec, "|") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if value, ok := ResolvePath(payload, path); ok {
			parts = append(parts, Stringify(value))
		}
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "-"), true
}

// Stringify renders a generated value for use inside a topic string or
// user property. Whole floats drop their fractional part so numeric
// payload fields substitute cleanly into topic segments.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
