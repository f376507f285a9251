// Package inspector reads and writes per-kind node configuration through
// typed views. Reads never fail: every missing or mistyped key falls back
// to a documented default so a half-filled config cannot crash the
// editor. Keys a view does not recognize are preserved verbatim in the
// Extra bag and written back unchanged, keeping configs forward
// compatible with newer editors.
package inspector

import "strconv"

// asString reads a string key with a fallback default.
func asString(config map[string]any, key, fallback string) string {
	if value, ok := config[key].(string); ok {
		return value
	}

	return fallback
}

// asFloat reads a numeric key, accepting json numbers, ints and numeric
// strings, with a fallback default.
func asFloat(config map[string]any, key string, fallback float64) float64 {
	switch value := config[key].(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}

	return fallback
}

// asInt reads an integer key with a fallback default.
func asInt(config map[string]any, key string, fallback int) int {
	switch value := config[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case string:
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return fallback
}

// asStringSlice reads a list key, tolerating both []string and the
// []any shape json decoding produces.
func asStringSlice(config map[string]any, key string) []string {
	switch value := config[key].(type) {
	case []string:
		result := make([]string, len(value))
		copy(result, value)

		return result
	case []any:
		result := make([]string, 0, len(value))

		for _, item := range value {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}

		return result
	}

	return []string{}
}

// asStringMap reads a nested object key as map[string]string.
func asStringMap(config map[string]any, key string) map[string]string {
	result := make(map[string]string)

	if nested, ok := config[key].(map[string]any); ok {
		for k, v := range nested {
			if str, ok := v.(string); ok {
				result[k] = str
			}
		}
	}

	return result
}

// extraKeys collects every config key the view did not consume.
func extraKeys(config map[string]any, consumed ...string) map[string]any {
	known := make(map[string]bool, len(consumed))
	for _, key := range consumed {
		known[key] = true
	}

	extra := make(map[string]any)

	for key, value := range config {
		if !known[key] {
			extra[key] = value
		}
	}

	return extra
}
