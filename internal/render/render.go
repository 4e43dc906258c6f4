// Package render substitutes branding placeholders into template bodies and
// detects drift between rendered output and committed files.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// placeholderPattern matches {{ NAME }} markers. NAME is restricted to
// uppercase letters, digits, and underscore; surrounding whitespace inside
// the braces is optional.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Z0-9_]+)\s*\}\}`)

// Render substitutes every placeholder in template from ctx.
//
// A placeholder whose name is not in ctx fails with an unknown-placeholder
// error. After substitution the output is re-scanned; any placeholder still
// present (a value smuggling in its own markers) fails as unresolved. The
// second scan cannot trigger with validated branding tokens but guards the
// output regardless.
func Render(template string, ctx branding.Context) (string, error) {
	var unknown string
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := ctx[name]
		if !ok {
			if unknown == "" {
				unknown = name
			}
			return match
		}
		return value
	})
	if unknown != "" {
		return "", branding.NewFieldError(branding.TemplateInvalid, unknown,
			fmt.Sprintf("unknown template key: %s", unknown))
	}
	if loc := placeholderPattern.FindString(rendered); loc != "" {
		return "", branding.NewError(branding.TemplateInvalid,
			"unresolved template placeholders detected")
	}
	return rendered, nil
}

// suffix helper shared by the writer and the header stripper.
func hasSuffixFold(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), suffix)
}
