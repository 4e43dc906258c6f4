package app

import (
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// EnvVar is one exported branding identifier.
type EnvVar struct {
	Name  string
	Value string
}

// BrandingEnv lists the identifiers exported to downstream consumers.
// BRANDING_NAME preserves the brand exactly as the user gave it; the rest
// are the derived forms.
func BrandingEnv(b *branding.Branding, brandName string) []EnvVar {
	return []EnvVar{
		{"BRANDING_NAME", brandName},
		{"BRANDING_CLI_NAME", b.CLIName},
		{"BRANDING_SLUG", b.Slug},
		{"BRANDING_ENV_PREFIX", b.EnvPrefix},
		{"BRANDING_LABEL_PREFIX", b.LabelPrefix},
	}
}

// WriteBrandingEnv writes the sourceable env file. Values are shell-quoted;
// the exports are returned to the caller as a value rather than pushed into
// the process environment, so collaborators receive them explicitly.
func WriteBrandingEnv(path string, vars []EnvVar) error {
	lines := []string{
		"# Auto-generated by branding generator. DO NOT EDIT.",
		"# Source this file to populate common branding identifiers.",
	}
	for _, v := range vars {
		lines = append(lines, "export "+v.Name+"="+shellquote.Join(v.Value))
	}
	content := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(path, []byte(content), 0644)
}
