// Package branding derives the full set of branded identifiers from a single
// brand string. Every derived field is a pure function of that one input, so
// two runs over the same brand always produce identical results.
package branding

import (
	"fmt"
	"regexp"
	"strings"
)

// Format patterns for the validated fields.
var (
	slugPattern        = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	envPrefixPattern   = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	labelPrefixPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*$`)

	slugInvalidRuns      = regexp.MustCompile(`[^a-z0-9]+`)
	envPrefixInvalidRuns = regexp.MustCompile(`[^A-Z0-9]+`)
)

// Paths holds the brand-derived filesystem locations.
type Paths struct {
	// HomeDir is the per-user home directory name.
	HomeDir string
	// OutputDir is the build output directory name.
	OutputDir string
	// StagingDir is the staging directory name.
	StagingDir string
}

// RootCA holds the brand-derived root certificate identifiers.
type RootCA struct {
	// SecretID is the secret mount identifier for the root CA.
	SecretID string
	// CertFilename is the certificate file name.
	CertFilename string
}

// Runtime holds the brand-derived container-runtime identifiers.
type Runtime struct {
	ContainerPrefix     string
	Namespace           string
	CNIName             string
	CNIBridge           string
	CNIDir              string
	ResolvConfPath      string
	LabelEnv            string
	LabelFunction       string
	LabelCreatedBy      string
	LabelCreatedByValue string
	CgroupParent        string
	CgroupLeaf          string
}

// Branding is the immutable record of identifiers derived from one brand
// string. Construct it with Derive; do not build it by hand.
type Branding struct {
	// CLIName is the command name exposed to users (same as Slug).
	CLIName string
	// Slug is the lowercase hyphenated form of the brand.
	Slug string
	// EnvPrefix is the uppercase underscore form of the brand.
	EnvPrefix string
	// LabelPrefix is the reverse-DNS label prefix ("com." + Slug).
	LabelPrefix string
	// Paths are the derived filesystem locations.
	Paths Paths
	// RootCA are the derived certificate identifiers.
	RootCA RootCA
	// Runtime are the derived container-runtime identifiers.
	Runtime Runtime
}

// Derive computes the Branding record for a brand string.
// Returns a configuration error when the brand is empty, normalizes to
// nothing, or any derived field fails format validation.
func Derive(brand string) (*Branding, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, NewError(InvalidBrand, "brand must be a non-empty string")
	}

	slug, err := normalizeSlug(brand)
	if err != nil {
		return nil, err
	}
	envPrefix, err := normalizeEnvPrefix(brand)
	if err != nil {
		return nil, err
	}

	b := &Branding{
		CLIName:     slug,
		Slug:        slug,
		EnvPrefix:   envPrefix,
		LabelPrefix: "com." + slug,
		Paths: Paths{
			HomeDir:    "." + slug,
			OutputDir:  "." + slug,
			StagingDir: ".staging",
		},
		RootCA: RootCA{
			SecretID:     slug + "_root_ca",
			CertFilename: "rootCA.crt",
		},
		Runtime: Runtime{
			ContainerPrefix:     slug,
			Namespace:           slug,
			CNIName:             slug + "-net",
			CNIBridge:           slug + "0",
			CNIDir:              fmt.Sprintf("/run/%s/cni", slug),
			ResolvConfPath:      fmt.Sprintf("/run/containerd/%s/resolv.conf", slug),
			LabelEnv:            slug + "_env",
			LabelFunction:       slug + "_function",
			LabelCreatedBy:      "created_by",
			LabelCreatedByValue: slug + "-agent",
			CgroupParent:        slug,
			CgroupLeaf:          "runtime-node",
		},
	}

	if err := validatePattern("cli_name", b.CLIName, slugPattern); err != nil {
		return nil, err
	}
	if err := validatePattern("slug", b.Slug, slugPattern); err != nil {
		return nil, err
	}
	if err := validatePattern("env_prefix", b.EnvPrefix, envPrefixPattern); err != nil {
		return nil, err
	}
	if err := validatePattern("label_prefix", b.LabelPrefix, labelPrefixPattern); err != nil {
		return nil, err
	}

	return b, nil
}

// normalizeSlug lowercases the brand and collapses every run of characters
// outside [a-z0-9] into a single hyphen, trimming hyphens at the edges.
func normalizeSlug(brand string) (string, error) {
	cleaned := slugInvalidRuns.ReplaceAllString(strings.ToLower(brand), "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return "", NewError(InvalidBrand, "brand must include at least one alphanumeric character")
	}
	return cleaned, nil
}

// normalizeEnvPrefix uppercases the brand and collapses every run of
// characters outside [A-Z0-9] into a single underscore, trimming underscores
// at the edges. The result must start with a letter.
func normalizeEnvPrefix(brand string) (string, error) {
	cleaned := envPrefixInvalidRuns.ReplaceAllString(strings.ToUpper(brand), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" || cleaned[0] < 'A' || cleaned[0] > 'Z' {
		return "", NewError(InvalidBrand, "brand must start with a letter for env_prefix derivation")
	}
	return cleaned, nil
}

// validatePattern checks a derived field against its format pattern.
func validatePattern(field, value string, pattern *regexp.Regexp) error {
	if !pattern.MatchString(value) {
		return NewFieldError(InvalidField, field, fmt.Sprintf("invalid format: %q", value))
	}
	return nil
}
