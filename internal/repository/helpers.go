package repository

import (
	"encoding/json"
	"fmt"
)

// marshalList serializes a slice for storage in a TEXT column. Nil slices
// store as "[]" so columns never hold SQL NULL.
func marshalList(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling list column: %w", err)
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// unmarshalList deserializes a TEXT column written by marshalList.
func unmarshalList(s string, out any) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("unmarshaling list column: %w", err)
	}
	return nil
}
