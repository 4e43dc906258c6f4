package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/esbinfo"
)

// EnsureESBInfo reconciles the downstream base-tracking file against the
// resolved brand and the optional base-reference argument.
//
// Runs for the reserved self-brand skip tracking entirely. Otherwise:
//
//   - no info file: a base argument is required; without one the run fails
//     (or warns and skips under force). Creating the file is refused in
//     check mode since check never writes.
//   - info file without any base entry: corrupt state, always fatal.
//   - info file plus a base argument: a differing existing value is a
//     mismatch in check mode and an overwrite otherwise; an absent key is
//     created outside check mode and fatal inside it.
func EnsureESBInfo(root, brand, esbBase string, check, force bool, warnOut io.Writer) error {
	if brand == SelfBrand {
		return nil
	}
	infoPath := filepath.Join(root, InfoFileName)
	info, err := esbinfo.Load(infoPath)
	if err != nil {
		return err
	}

	if len(info) == 0 {
		if esbBase == "" {
			if force {
				fmt.Fprintf(warnOut, "WARNING: %s missing (skipped with --force)\n", InfoFileName)
				return nil
			}
			return branding.NewFileError(branding.InfoMissing, InfoFileName,
				"missing (use --esb-base to create it)")
		}
		if check {
			return branding.NewFileError(branding.InfoMissing, InfoFileName,
				"missing for --check (rerun without --check)")
		}
		key, value := esbinfo.ClassifyBase(esbBase)
		return esbinfo.Write(infoPath, key, value)
	}

	if !esbinfo.HasBase(info) {
		return branding.NewFileError(branding.InfoMissing, InfoFileName, "missing ESB base entry")
	}

	if esbBase != "" {
		key, value := esbinfo.ClassifyBase(esbBase)
		existing := info[key]
		switch {
		case existing != "" && existing != value:
			if check {
				return branding.NewFieldError(branding.InfoMismatch, key,
					fmt.Sprintf("%s mismatch (expected %s)", InfoFileName, existing))
			}
			return esbinfo.Write(infoPath, key, value)
		case existing == "":
			if check {
				return branding.NewFieldError(branding.InfoMissing, key,
					fmt.Sprintf("%s missing %s (rerun without --check)", InfoFileName, key))
			}
			return esbinfo.Write(infoPath, key, value)
		}
	}
	return nil
}
