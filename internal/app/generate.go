package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/config"
	"github.com/poruru-code/esb-branding-tool/internal/debug"
	"github.com/poruru-code/esb-branding-tool/internal/gitmeta"
	"github.com/poruru-code/esb-branding-tool/internal/lockfile"
	"github.com/poruru-code/esb-branding-tool/internal/render"
)

// GenerateOptions configures a generation (or check) run.
type GenerateOptions struct {
	// Root overrides branded-repo root discovery.
	Root string
	// ToolRoot overrides tool-repo root discovery.
	ToolRoot string
	// Brand is the explicit brand argument, if any.
	Brand string
	// ESBBase is the downstream base commit/tag argument, if any.
	ESBBase string
	// Check enables check mode: no writes, diffs and mismatch collection.
	Check bool
	// Force downgrades lock/info mismatches to warnings.
	Force bool
	// Verbose prints one line per rendered template.
	Verbose bool
	// NoHeader strips the generated-file header from rendered output.
	NoHeader bool

	// Git answers version-control lookups. Defaults to the real git CLI.
	Git gitmeta.Provider
	// Specs are the templates to render. Defaults to render.DefaultSpecs.
	Specs []render.TemplateSpec
	// Out receives run output. Defaults to stdout.
	Out io.Writer
	// ErrOut receives warnings. Defaults to stderr.
	ErrOut io.Writer
}

// GenerateResult reports what a run resolved and produced.
type GenerateResult struct {
	// Brand is the effective brand.
	Brand string
	// Source says where the brand came from.
	Source BrandSource
	// Branding is the derived record.
	Branding *branding.Branding
	// Env holds the exported identifiers (empty in check mode). Collaborators
	// needing the branding environment read it from here, never from the
	// process environment.
	Env []EnvVar
	// Mismatches lists drifted target paths found in check mode.
	Mismatches []string
}

// Generate runs the full branding pipeline: lock validation, brand
// resolution, downstream base reconciliation, derivation, env export, and
// template rendering.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	if opts.Git == nil {
		opts.Git = gitmeta.NewProvider()
	}
	if opts.Specs == nil {
		opts.Specs = render.DefaultSpecs
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	debug.DebugSection("lock validation")
	toolRoot, err := ResolveToolRoot(opts.ToolRoot)
	if err != nil {
		return nil, err
	}
	debug.DebugValue("toolRoot", toolRoot)

	lock, err := lockfile.Load(filepath.Join(toolRoot, LockFileName))
	if err != nil {
		return nil, err
	}
	currentCommit, err := opts.Git.CurrentCommit(toolRoot)
	if err != nil {
		return nil, err
	}
	if err := lockfile.ValidateToolCommit(lock, currentCommit, opts.Force, opts.ErrOut); err != nil {
		return nil, err
	}

	debug.DebugSection("brand resolution")
	root, err := ResolveRepoRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	debug.DebugValue("root", root)

	configBrand, err := config.LoadBrand(filepath.Join(root, config.DefaultPath))
	if err != nil {
		return nil, err
	}
	resolution, err := ResolveBrand(opts.Brand, configBrand, opts.Check)
	if err != nil {
		return nil, err
	}

	if err := EnsureESBInfo(root, resolution.Brand, opts.ESBBase, opts.Check, opts.Force, opts.ErrOut); err != nil {
		return nil, err
	}

	fmt.Fprintf(opts.Out, "==== BRANDING: %s ====\n", resolution.Brand)

	b, err := branding.Derive(resolution.Brand)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Brand:    resolution.Brand,
		Source:   resolution.Source,
		Branding: b,
	}

	if !opts.Check {
		result.Env = BrandingEnv(b, resolution.Brand)
		if err := WriteBrandingEnv(filepath.Join(root, EnvFileName), result.Env); err != nil {
			return nil, err
		}
	}

	debug.DebugSection("template rendering")
	ctx := branding.BuildContext(b)
	mismatches, err := render.RenderAll(opts.Specs, toolRoot, root, ctx, render.Options{
		Check:       opts.Check,
		Verbose:     opts.Verbose,
		StripHeader: opts.NoHeader,
		Out:         opts.Out,
	})
	if err != nil {
		return nil, err
	}
	result.Mismatches = mismatches
	return result, nil
}
