package source

import "strings"

// Loose accessors over decoded JSON. Board APIs are not a stable contract,
// so every lookup tolerates missing keys, nulls and wrong types.

// Str returns the first non-empty string among the named keys.
func Str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// Nested returns m[key] as an object, or nil.
func Nested(m map[string]any, key string) map[string]any {
	child, _ := m[key].(map[string]any)
	return child
}

// NestedStr returns m[key][sub] as a non-empty string, or "".
func NestedStr(m map[string]any, key, sub string) string {
	if child := Nested(m, key); child != nil {
		return Str(child, sub)
	}
	return ""
}

// Num returns m[key] as a float64 (the only numeric shape encoding/json
// produces for untyped decoding).
func Num(m map[string]any, key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}

// List returns m[key] as a slice of objects, skipping non-object elements.
func List(m map[string]any, key string) []map[string]any {
	raw, _ := m[key].([]any)
	if raw == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
