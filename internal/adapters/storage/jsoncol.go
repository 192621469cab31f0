package storage

import (
	"encoding/json"
	"fmt"
)

// EncodeList stores an ordered string list as a JSON array column.
func EncodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeList reads a JSON array column. An empty column decodes to an empty list.
func DecodeList(raw string) ([]string, error) {
	items := []string{}
	if raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	return items, nil
}

// BoolToInt maps a bool onto SQLite's integer booleans.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
