package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/gamerec/internal/domain"
)

// ParseTags decodes the persisted tag encoding (a JSON array of strings).
// Absent or empty encodings yield an empty slice and no error. Malformed
// encodings also yield an empty slice; the returned error wraps domain.ErrData
// so callers can log it, but it is never fatal.
func ParseTags(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}, fmt.Errorf("%w: tags %q: %w", domain.ErrData, truncate(raw, 64), err)
	}
	if tags == nil {
		return []string{}, nil
	}
	return tags, nil
}

// EncodeTags returns the persisted tag encoding for tags.
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, err := json.Marshal(tags)
	if err != nil {
		// []string always marshals
		return "[]"
	}
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
