// ABOUTME: JSON encoding helpers for tags and metadata columns.
// ABOUTME: Keeps the domain model typed; encoding lives at the store boundary.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// encodeTags serializes a tag list to its JSON column value. Nil or empty
// lists map to NULL.
func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

// decodeTags parses a JSON-encoded tags column. NULL yields nil.
func decodeTags(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw.String), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

// encodeMetadata serializes a metadata map to its JSON column value.
func encodeMetadata(md map[string]any) (any, error) {
	if len(md) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return string(data), nil
}

// decodeMetadata parses a JSON-encoded metadata column. NULL yields nil.
func decodeMetadata(raw sql.NullString) (map[string]any, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var md map[string]any
	if err := json.Unmarshal([]byte(raw.String), &md); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return md, nil
}

// tagPattern builds the LIKE pattern that matches a tag anywhere in a
// JSON-encoded array column.
func tagPattern(tag string) string {
	return `%"` + tag + `"%`
}
