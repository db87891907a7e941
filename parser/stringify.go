package parser

import (
	"fmt"
	"strconv"
)

// stringifyAvroValue renders one decoded Avro field by spec.md §4.5's
// per-type rule. goavro represents a union type as a single-entry
// map{branch: value}; the branch's value is unwrapped before rendering.
func stringifyAvroValue(v interface{}) string {
	if m, ok := v.(map[string]interface{}); ok && len(m) == 1 {
		for _, inner := range m {
			return stringifyAvroValue(inner)
		}
	}
	return stringifyScalar(v)
}

func stringifyScalar(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []byte:
		return string(t)
	case []interface{}:
		return fmt.Sprintf("[array:%d]", len(t))
	default:
		return fmt.Sprintf("%v", t)
	}
}
