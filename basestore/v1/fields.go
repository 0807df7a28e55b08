package v1

import (
	"fmt"
	"strconv"
	"strings"
)

// Field decoding for the store's loosely typed rows lives here so the rest
// of the codebase only ever sees plain Go values.

// StringField returns the field as a trimmed string, tolerating numeric
// values the store occasionally returns for text columns.
func StringField(fields map[string]any, key string) string {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// NumberField returns the field as a float64 if it is numeric or a numeric
// string.
func NumberField(fields map[string]any, key string) (float64, bool) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// DecodeEmployeeIDField normalizes the store's employee-id column, which
// arrives in three shapes depending on how the row was created: a bare
// string, a length-1 array of {text: ...} objects, or a single {text: ...}
// object. Anything unrecognized decodes to "".
func DecodeEmployeeIDField(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		if len(v) == 0 {
			return ""
		}
		return DecodeEmployeeIDField(v[0])
	case map[string]any:
		if text, ok := v["text"].(string); ok {
			return strings.TrimSpace(text)
		}
		return ""
	default:
		return ""
	}
}

// EmployeeIDField applies DecodeEmployeeIDField to a named field.
func EmployeeIDField(fields map[string]any, key string) string {
	return DecodeEmployeeIDField(fields[key])
}
