// Package keypath parses an indentation-nested, colon-delimited text format
// into a flat map keyed by dotted path.
//
// The parser is deliberately lenient: indentation that is not a clean
// multiple of two spaces never raises an error, it is interpreted
// best-effort against the currently open scopes. Irregular input may
// therefore parse to something surprising rather than failing. That is the
// documented contract for the lock-file grammar, which is always written by
// this tool in a regular shape.
package keypath

import "strings"

// scope is one open nesting level.
type scope struct {
	// prefix is the dotted key prefix for values at this level.
	prefix string
}

// Parse reads lines of the form "key: value" with two-space indentation into
// a flat map from dotted path to value.
//
// Blank lines and lines whose first non-space character is '#' are skipped.
// A "key:" line with no value opens a nesting scope; dedenting closes every
// scope deeper than the new indentation. Values wrapped in matching single
// or double quotes have the quotes stripped; nothing else is unescaped.
func Parse(text string) map[string]string {
	data := make(map[string]string)
	var stack []scope

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		for len(stack) > 0 && indent < len(stack)*2 {
			stack = stack[:len(stack)-1]
		}

		key, rawValue, ok := strings.Cut(stripped, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		rawValue = strings.TrimSpace(rawValue)

		if rawValue == "" {
			prefix := key + "."
			if len(stack) > 0 {
				prefix = stack[len(stack)-1].prefix + prefix
			}
			stack = append(stack, scope{prefix: prefix})
			continue
		}

		prefix := ""
		if len(stack) > 0 {
			prefix = stack[len(stack)-1].prefix
		}
		data[prefix+key] = StripQuotes(rawValue)
	}

	return data
}

// StripQuotes removes one layer of matching single or double quotes.
func StripQuotes(value string) string {
	if len(value) >= 2 && value[0] == value[len(value)-1] && (value[0] == '"' || value[0] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
