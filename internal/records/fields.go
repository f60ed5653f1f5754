// Package records reads logical fields out of generic JSON records.
package records

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Field returns the value of the first key in keys that is present in record.
// A record that is not a JSON object has no fields.
func Field(record any, keys []string) (any, bool) {
	obj, ok := record.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, key := range keys {
		if value, exists := obj[key]; exists {
			return value, true
		}
	}
	return nil, false
}

// Number reports whether value is a JSON number and returns it as float64.
// Booleans and numeric strings are not numbers.
func Number(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Render formats value for error messages: strings verbatim, numbers in their
// JSON text, absent or null values as "null", and composites as compact JSON.
func Render(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
