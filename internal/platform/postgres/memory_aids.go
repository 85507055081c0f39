package postgres

import (
	"encoding/json"
	"fmt"
)

// encodeMemoryAids serializes a mnemonic-aid sequence to the JSON text
// stored in the memory_aids column. A nil slice is stored as an empty
// array so reads never produce null.
func encodeMemoryAids(aids []string) (string, error) {
	if aids == nil {
		aids = []string{}
	}

	data, err := json.Marshal(aids)
	if err != nil {
		return "", fmt.Errorf("failed to encode memory aids: %w", err)
	}

	return string(data), nil
}

// decodeMemoryAids deserializes the memory_aids column back into the
// ordered sequence it was written from.
func decodeMemoryAids(data string) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}

	var aids []string
	if err := json.Unmarshal([]byte(data), &aids); err != nil {
		return nil, fmt.Errorf("failed to decode memory aids: %w", err)
	}

	if aids == nil {
		aids = []string{}
	}

	return aids, nil
}
