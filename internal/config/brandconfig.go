// Package config loads and writes the persisted branding configuration
// (config/branding.yaml). The file recognizes a single key, "brand".
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// DefaultPath is the branding config location relative to the repo root.
const DefaultPath = "config/branding.yaml"

// brandConfig is the on-disk shape of branding.yaml.
type brandConfig struct {
	Brand string `yaml:"brand"`
}

// LoadBrand returns the persisted brand value from path.
// A missing file yields ("", nil); a file that exists but carries no brand
// value is a configuration error.
func LoadBrand(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var cfg brandConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", branding.NewErrorWithCause(branding.InvalidBrand,
			"invalid branding config "+path, err)
	}
	brand := strings.TrimSpace(cfg.Brand)
	if brand == "" {
		return "", branding.NewFileError(branding.InvalidBrand, path, "missing 'brand' value")
	}
	return brand, nil
}

// WriteBrandConfig persists the brand value with the standard file header,
// creating parent directories as needed.
func WriteBrandConfig(path, brand string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	content := strings.Join([]string{
		"# Where: config/branding.yaml",
		"# What: Branding identifier for generator defaults.",
		"# Why: Keep branding reproducible across clones.",
		"brand: " + brand,
		"",
	}, "\n")
	return os.WriteFile(path, []byte(content), 0644)
}
