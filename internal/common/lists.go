package common

import (
	"encoding/json"
	"strings"
)

// EncodeStringList serializes a list for storage as a JSON array.
// Lists live as []string everywhere in memory; this is the only
// place they are flattened to text.
func EncodeStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeStringList parses a stored list. Legacy rows may hold a
// comma-separated string instead of JSON; that fallback drops empty
// segments, the JSON path keeps elements as-is.
func DecodeStringList(value string) []string {
	if value == "" || value == "[]" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(value), &items); err == nil {
		return items
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
