package render

import (
	"os"
	"path/filepath"

	"github.com/poruru-code/esb-branding-tool/internal/debug"
)

// WriteFile writes rendered content to path, creating parent directories as
// needed.
//
// Permission bits of an existing target are preserved. New files default to
// 0755 for shell scripts and 0644 otherwise, so regenerating never strips an
// executable bit that a previous run (or a human) set.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if hasSuffixFold(path, ".sh") {
		mode = 0755
	}

	debug.Debug("[render] writing %s (mode %o, %d bytes)", path, mode, len(content))
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return err
	}
	// WriteFile modes are subject to the umask; pin the exact bits.
	return os.Chmod(path, mode)
}
