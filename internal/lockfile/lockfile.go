// Package lockfile reads and writes branding.lock, the record pinning the
// generator's own commit and the upstream source reference.
package lockfile

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/debug"
	"github.com/poruru-code/esb-branding-tool/internal/keypath"
)

// SchemaVersion is the current lock-file schema tag.
const SchemaVersion = 1

// Well-known lock keys.
const (
	KeySchemaVersion = "schema_version"
	KeyToolCommit    = "tool.commit"
	KeyToolRef       = "tool.ref"
	KeyESBRepo       = "source.esb_repo"
	KeyESBCommit     = "source.esb_commit"
	KeyESBRef        = "source.esb_ref"
	KeyBrand         = "parameters.brand"
)

// equivalenceKeys are the keys compared by Equivalent, in layout order.
var equivalenceKeys = []string{
	KeySchemaVersion,
	KeyToolCommit,
	KeyToolRef,
	KeyESBRepo,
	KeyESBCommit,
	KeyESBRef,
	KeyBrand,
}

// Record is a flat lock-file mapping from dotted key to value.
type Record map[string]string

// Load reads and parses the lock file at path.
// Returns a configuration error when the file does not exist; callers that
// require a lock treat this as fatal.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, branding.NewFileError(branding.LockMissing, path, "lock file not found in tool repo")
		}
		return nil, err
	}
	rec := Record(keypath.Parse(string(data)))
	debug.DebugValue("lockfile.keys", len(rec))
	return rec, nil
}

// LoadIfExists reads the lock file, returning nil without error when absent.
func LoadIfExists(path string) (Record, error) {
	rec, err := Load(path)
	if err != nil {
		if bErr, ok := err.(*branding.Error); ok && bErr.Type == branding.LockMissing {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// ValidateToolCommit checks the current tool commit against tool.commit in
// the lock. With skip set a mismatch degrades to a warning on warnOut.
func ValidateToolCommit(rec Record, currentCommit string, skip bool, warnOut io.Writer) error {
	expected := rec[KeyToolCommit]
	if expected == "" {
		return branding.NewFieldError(branding.LockInvalid, KeyToolCommit, "lock file missing tool.commit")
	}
	if currentCommit == expected {
		return nil
	}
	if skip {
		fmt.Fprintf(warnOut, "WARNING: tool repo commit mismatch (expected=%s, current=%s)\n",
			shortCommit(expected), shortCommit(currentCommit))
		return nil
	}
	return branding.NewError(branding.LockMismatch,
		"tool repo commit mismatch (checkout tool.commit from the lock file)")
}

// Equivalent reports whether two records agree on every pinned key.
// An absent key and an empty value are both "no value", so a record that
// omits tool.ref equals one carrying it as an empty string. Any other
// difference, whitespace included, breaks equivalence.
func Equivalent(a, b Record) bool {
	for _, key := range equivalenceKeys {
		if a[key] != b[key] {
			return false
		}
	}
	return true
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

// Render produces the fixed lock-file layout. This is not a generic
// serializer: block order, quoting, and optional-field elision are part of
// the on-disk format.
func Render(rec Record, lockedAt time.Time) string {
	lines := []string{
		fmt.Sprintf("%s: %s", KeySchemaVersion, rec[KeySchemaVersion]),
		fmt.Sprintf("locked_at: %q", lockedAt.UTC().Format("2006-01-02T15:04:05Z")),
		"",
		"tool:",
		fmt.Sprintf("  commit: %q", rec[KeyToolCommit]),
	}
	if ref := rec[KeyToolRef]; ref != "" {
		lines = append(lines, fmt.Sprintf("  ref: %q", ref))
	}
	lines = append(lines,
		"",
		"source:",
		fmt.Sprintf("  esb_repo: %q", rec[KeyESBRepo]),
		fmt.Sprintf("  esb_commit: %q", rec[KeyESBCommit]),
	)
	if ref := rec[KeyESBRef]; ref != "" {
		lines = append(lines, fmt.Sprintf("  esb_ref: %q", ref))
	}
	lines = append(lines,
		"",
		"parameters:",
		fmt.Sprintf("  brand: %q", rec[KeyBrand]),
		"",
	)
	return strings.Join(lines, "\n")
}

// Update writes rec to path unless an equivalent record is already on disk.
// Skipping equivalent writes keeps the locked_at timestamp from churning on
// no-op updates. Returns true when the file was written.
func Update(path string, rec Record, now time.Time) (bool, error) {
	existing, err := LoadIfExists(path)
	if err != nil {
		return false, err
	}
	if existing != nil && Equivalent(existing, rec) {
		debug.Debug("[lockfile] %s unchanged, skipping write", path)
		return false, nil
	}
	if err := os.WriteFile(path, []byte(Render(rec, now)), 0644); err != nil {
		return false, err
	}
	return true, nil
}
