package app

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/esbinfo"
	"github.com/poruru-code/esb-branding-tool/internal/gitmeta"
	"github.com/poruru-code/esb-branding-tool/internal/lockfile"
)

// LockUpdateOptions configures a lock-file update.
type LockUpdateOptions struct {
	// ToolRoot overrides tool-repo root discovery.
	ToolRoot string
	// ESBDir is the path to the upstream ESB checkout. Required.
	ESBDir string
	// ESBRepo is the upstream repository URL or "owner/repo" shorthand.
	// Defaults to the checkout's origin remote.
	ESBRepo string
	// ESBRef is the upstream ref (tag/branch), if any. Commit hashes are
	// dropped since the commit is pinned separately.
	ESBRef string
	// Brand is the brand identifier to record. Required.
	Brand string
	// LockFile is the lock path relative to the tool root.
	LockFile string

	// Git answers version-control lookups. Defaults to the real git CLI.
	Git gitmeta.Provider
	// Now supplies the lock timestamp. Defaults to time.Now.
	Now func() time.Time
}

// UpdateLock resolves current tool and upstream metadata and writes the lock
// file. The write is skipped when the resolved record is equivalent to the
// one on disk, so repeated updates never churn the timestamp. Returns true
// when the file was written.
func UpdateLock(opts LockUpdateOptions) (bool, error) {
	if opts.Git == nil {
		opts.Git = gitmeta.NewProvider()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LockFile == "" {
		opts.LockFile = LockFileName
	}
	if opts.Brand == "" {
		return false, branding.NewError(branding.InvalidBrand, "brand is required")
	}

	toolRoot, err := ResolveToolRoot(opts.ToolRoot)
	if err != nil {
		return false, err
	}
	esbDir, err := filepath.Abs(opts.ESBDir)
	if err != nil {
		return false, err
	}

	esbRepo := opts.ESBRepo
	if esbRepo == "" {
		esbRepo, _ = opts.Git.RemoteURL(esbDir, "origin")
	}
	if esbRepo == "" {
		return false, branding.NewError(branding.LockInvalid, "esb_repo is required (pass --esb-repo)")
	}
	esbRepo = expandRepoURL(esbRepo)

	toolCommit, err := opts.Git.CurrentCommit(toolRoot)
	if err != nil {
		return false, err
	}
	toolRef, _ := opts.Git.ExactTag(toolRoot)
	esbCommit, err := opts.Git.CurrentCommit(esbDir)
	if err != nil {
		return false, err
	}

	rec := lockfile.Record{
		lockfile.KeySchemaVersion: strconv.Itoa(lockfile.SchemaVersion),
		lockfile.KeyToolCommit:    toolCommit,
		lockfile.KeyToolRef:       toolRef,
		lockfile.KeyESBRepo:       esbRepo,
		lockfile.KeyESBCommit:     esbCommit,
		lockfile.KeyESBRef:        normalizeRef(opts.ESBRef),
		lockfile.KeyBrand:         opts.Brand,
	}
	return lockfile.Update(filepath.Join(toolRoot, opts.LockFile), rec, opts.Now())
}

// expandRepoURL turns bare "owner/repo" shorthand into a full GitHub URL.
func expandRepoURL(repo string) string {
	if !strings.Contains(repo, "://") && strings.Contains(repo, "/") {
		return "https://github.com/" + repo + ".git"
	}
	return repo
}

// normalizeRef drops values that are really commit hashes: the commit is
// recorded separately, so only symbolic refs belong in esb_ref.
func normalizeRef(ref string) string {
	key, value := esbinfo.ClassifyBase(ref)
	if key == esbinfo.KeyBaseCommit {
		return ""
	}
	return value
}
