// Package esbinfo reads and writes the .esb-info file tracking the
// downstream ESB base commit or tag used for patch tracking.
package esbinfo

import (
	"os"
	"regexp"
	"strings"
)

// Recognized info keys. Exactly one is populated in practice.
const (
	KeyBaseCommit = "ESB_BASE_COMMIT"
	KeyBaseTag    = "ESB_BASE_TAG"
)

var commitPattern = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

// Record is the flat info-file mapping.
type Record map[string]string

// Load parses the info file at path. A missing file is not an error and
// yields an empty record.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return nil, err
	}

	rec := Record{}
	for _, line := range strings.Split(string(data), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		key, value, ok := strings.Cut(stripped, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			rec[key] = value
		}
	}
	return rec, nil
}

// HasBase reports whether either base key is populated.
func HasBase(rec Record) bool {
	return rec[KeyBaseCommit] != "" || rec[KeyBaseTag] != ""
}

// ClassifyBase decides which info key a base reference belongs under.
// A 7-40 character hexadecimal value is a commit; anything else is a tag.
func ClassifyBase(value string) (key, normalized string) {
	normalized = strings.TrimSpace(value)
	if commitPattern.MatchString(normalized) {
		return KeyBaseCommit, normalized
	}
	return KeyBaseTag, normalized
}

// Write replaces the info file with a fixed header and a single base entry.
func Write(path, key, value string) error {
	content := strings.Join([]string{
		"# Auto-generated by branding generator. DO NOT EDIT.",
		"# Tracks downstream ESB base commit/tag for patching.",
		key + "=" + value,
		"",
	}, "\n")
	return os.WriteFile(path, []byte(content), 0644)
}
