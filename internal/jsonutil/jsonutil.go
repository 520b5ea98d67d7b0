// Package jsonutil normalizes publish payloads into their JSON wire form.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// IsEncoded reports whether s is treated as an already JSON-encoded payload.
//
// A string counts as encoded only when decoding succeeds AND the decoded
// value is non-empty: null, false, 0, "", empty arrays and empty objects
// all count as not encoded. As a consequence legitimate JSON literals like
// "null", "0" and "[]" are re-encoded as JSON string literals. Downstream
// consumers depend on this exact wire behavior; do not "fix" it here.
func IsEncoded(s string) bool {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return false
	}

	return !isEmpty(v)
}

// Normalize returns the JSON wire form of message.
//
// Strings already holding encoded JSON (per IsEncoded) pass through
// byte-identical; everything else is marshalled.
//
// Parameters:
//   - message: Arbitrary payload value
//
// Returns:
//   - []byte: JSON-encoded payload ready for the wire
//   - error: Marshalling error for values encoding/json cannot represent
func Normalize(message any) ([]byte, error) {
	if s, ok := message.(string); ok && IsEncoded(s) {
		return []byte(s), nil
	}

	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return data, nil
}

// isEmpty mirrors the truthiness rules the wire format was built around.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
