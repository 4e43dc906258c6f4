package render

import "strings"

// StripHeader removes the generated-file header from rendered content.
// CNI conflist templates carry the marker as a JSON "_comment" entry;
// everything else uses a leading block of '#' or '//' comment lines.
// templateName is the template file's base name.
func StripHeader(content, templateName string) string {
	if hasSuffixFold(templateName, ".conflist.tmpl") {
		return stripJSONComment(content)
	}
	return stripCommentHeader(content)
}

// stripJSONComment drops the first line containing a "_comment" key.
func stripJSONComment(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	skipped := false
	for _, line := range lines {
		if !skipped && strings.Contains(strings.TrimLeft(line, " \t"), `"_comment"`) {
			skipped = true
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// stripCommentHeader drops the leading comment block, keeping a shebang line
// (plus a separating blank line) when one is present.
func stripCommentHeader(content string) string {
	trailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	idx := 0
	var prefix []string
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		prefix = append(prefix, lines[0])
		idx = 1
	}
	for idx < len(lines) {
		stripped := strings.TrimSpace(lines[idx])
		if stripped == "" || strings.HasPrefix(stripped, "#") || strings.HasPrefix(stripped, "//") {
			idx++
			continue
		}
		break
	}

	trimmed := lines[idx:]
	for len(trimmed) > 0 && strings.TrimSpace(trimmed[0]) == "" {
		trimmed = trimmed[1:]
	}

	var result []string
	if len(prefix) > 0 {
		result = prefix
		if len(trimmed) > 0 && strings.TrimSpace(trimmed[0]) != "" {
			result = append(result, "")
		}
		result = append(result, trimmed...)
	} else {
		result = trimmed
	}

	text := strings.Join(result, "\n")
	if trailingNewline {
		text += "\n"
	}
	return text
}
