package mapping

import (
	"encoding/json"
	"fmt"
)

// marshalLines encodes line items for a JSONB column. A nil slice is stored as [].
func marshalLines[T any](lines []T) ([]byte, error) {
	if lines == nil {
		lines = []T{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode line items: %w", err)
	}
	return b, nil
}

func unmarshalLines[T any](raw []byte) ([]T, error) {
	lines := []T{}
	if len(raw) == 0 {
		return lines, nil
	}
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode line items: %w", err)
	}
	return lines, nil
}
