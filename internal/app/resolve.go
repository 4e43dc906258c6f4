package app

import (
	"fmt"
	"strings"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// Well-known file names and the reserved self-brand.
const (
	// SelfBrand is the generator's own reserved brand; runs for it skip
	// downstream base tracking entirely.
	SelfBrand = "esb"

	// LockFileName is the lock file at the tool root.
	LockFileName = "branding.lock"
	// InfoFileName is the downstream base-tracking file at the repo root.
	InfoFileName = ".esb-info"
	// EnvFileName is the generated env file at the repo root.
	EnvFileName = ".branding.env"
)

// BrandSource says where the effective brand came from.
type BrandSource int

const (
	// BrandFromExplicit means the brand came from the command line.
	BrandFromExplicit BrandSource = iota
	// BrandFromConfig means the brand came from persisted config.
	BrandFromConfig
)

// String returns the source name for logs.
func (s BrandSource) String() string {
	switch s {
	case BrandFromExplicit:
		return "explicit"
	case BrandFromConfig:
		return "config"
	default:
		return "unknown"
	}
}

// BrandResolution is the outcome of resolving the effective brand.
type BrandResolution struct {
	Brand  string
	Source BrandSource
}

// ResolveBrand decides the effective brand from an explicit argument and the
// persisted config value.
//
// An explicit brand always wins in normal mode and never rewrites the
// persisted config. In check mode an explicit brand that disagrees with
// persisted config is a mismatch error; with no persisted config at all the
// explicit value is accepted as-is. Without an explicit brand the config
// value is used, and with neither the brand is a required input.
func ResolveBrand(explicit, configBrand string, check bool) (BrandResolution, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if configBrand != "" && configBrand != explicit && check {
			return BrandResolution{}, branding.NewError(branding.BrandMismatch,
				fmt.Sprintf("brand mismatch for --check (config=%s, requested=%s)", configBrand, explicit))
		}
		return BrandResolution{Brand: explicit, Source: BrandFromExplicit}, nil
	}
	if configBrand != "" {
		return BrandResolution{Brand: configBrand, Source: BrandFromConfig}, nil
	}
	return BrandResolution{}, branding.NewError(branding.InvalidBrand,
		"brand is required (use --brand or set config/branding.yaml)")
}
