// internal/form/coerce.go
package form

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Form values arrive either as strings from inputs or as decoded JSON values.

func toString(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case bool:
		return strconv.FormatBool(val), nil
	}
	return "", fmt.Errorf("cannot use %T as text", v)
}

func toBool(v interface{}) (bool, error) {
	switch val := v.(type) {
	case nil:
		return false, nil
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "false", "off", "0", "no":
			return false, nil
		case "true", "on", "1", "yes":
			return true, nil
		}
		return false, fmt.Errorf("cannot use %q as a switch value", val)
	case float64:
		return val != 0, nil
	case int:
		return val != 0, nil
	}
	return false, fmt.Errorf("cannot use %T as a switch value", v)
}

// toSet turns a multi-select value into distinct, trimmed, non-empty strings
// in first-seen order. A single string may carry a comma-separated list.
func toSet(v interface{}) ([]string, error) {
	var raw []string
	switch val := v.(type) {
	case nil:
	case string:
		raw = strings.Split(val, ",")
	case []string:
		raw = val
	case []interface{}:
		for _, item := range val {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			raw = append(raw, s)
		}
	default:
		return nil, fmt.Errorf("cannot use %T as a selection", v)
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
