package convert

import "strings"

// enumValues maps the handful of underscored enum spellings used in the
// builder API to the spellings the charting library expects. Anything not
// listed here passes through untouched.
var enumValues = map[string]string{
	"above_bar":  "aboveBar",
	"below_bar":  "belowBar",
	"in_bar":     "inBar",
	"arrow_up":   "arrowUp",
	"arrow_down": "arrowDown",
}

// ToCamelCase converts an underscore_case key to camelCase. Keys that
// contain no underscores come back unchanged.
func ToCamelCase(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) == 1 {
		return name
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// TranslateOptions converts every key of a nested options mapping from
// underscore_case to camelCase, recursing into nested mappings. String
// values matching a known enum spelling are rewritten; all other values
// pass through unchanged. The input mapping is not modified.
func TranslateOptions(options map[string]any) map[string]any {
	result := make(map[string]any, len(options))

	for key, value := range options {
		camelKey := ToCamelCase(key)

		switch v := value.(type) {
		case map[string]any:
			result[camelKey] = TranslateOptions(v)
		case string:
			if mapped, ok := enumValues[v]; ok {
				result[camelKey] = mapped
			} else {
				result[camelKey] = v
			}
		default:
			result[camelKey] = value
		}
	}

	return result
}

// TranslateList applies TranslateOptions to every mapping in a list.
func TranslateList(items []map[string]any) []map[string]any {
	result := make([]map[string]any, len(items))
	for i, item := range items {
		result[i] = TranslateOptions(item)
	}
	return result
}
