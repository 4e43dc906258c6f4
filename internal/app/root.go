package app

import (
	"os"
	"path/filepath"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// rootMarker identifies the branded repository root.
const rootMarker = "docker-compose.yml"

// ResolveRepoRoot returns the branded repository root. An explicit override
// wins; otherwise the current directory and its parents are searched for the
// root marker.
func ResolveRepoRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	return findUpward(rootMarker, "repository root not found (docker-compose.yml missing)")
}

// ResolveToolRoot returns the generator tool's own repository root, the
// directory holding the lock file and the template tree.
func ResolveToolRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	return findUpward(LockFileName, "tool root not found ("+LockFileName+" missing)")
}

func findUpward(marker, missingMsg string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", branding.NewError(branding.RootNotFound, missingMsg)
		}
		dir = parent
	}
}
