package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/poruru-code/esb-branding-tool/internal/lockfile"
)

const (
	testToolCommit = "1111111111111111111111111111111111111111"
	testESBCommit  = "2222222222222222222222222222222222222222"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestUpdateLock(t *testing.T) {
	newRoots := func(t *testing.T) (string, string, *fakeGit) {
		t.Helper()
		toolRoot := t.TempDir()
		esbDir := t.TempDir()
		git := &fakeGit{
			commits: map[string]string{toolRoot: testToolCommit, esbDir: testESBCommit},
			tags:    map[string]string{},
			remotes: map[string]string{esbDir: "https://github.com/acme/esb.git"},
		}
		return toolRoot, esbDir, git
	}

	t.Run("creates the lock from resolved metadata", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		wrote, err := UpdateLock(LockUpdateOptions{
			ToolRoot: toolRoot,
			ESBDir:   esbDir,
			Brand:    "acme",
			ESBRef:   "v1.4.0",
			Git:      git,
			Now:      fixedNow,
		})
		if err != nil {
			t.Fatalf("UpdateLock failed: %v", err)
		}
		if !wrote {
			t.Error("Expected initial write")
		}

		rec, err := lockfile.Load(filepath.Join(toolRoot, LockFileName))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if rec[lockfile.KeyToolCommit] != testToolCommit {
			t.Errorf("Expected tool.commit pinned, got %q", rec[lockfile.KeyToolCommit])
		}
		if rec[lockfile.KeyESBCommit] != testESBCommit {
			t.Errorf("Expected source.esb_commit pinned, got %q", rec[lockfile.KeyESBCommit])
		}
		if rec[lockfile.KeyESBRepo] != "https://github.com/acme/esb.git" {
			t.Errorf("Expected origin remote as repo, got %q", rec[lockfile.KeyESBRepo])
		}
		if rec[lockfile.KeyESBRef] != "v1.4.0" {
			t.Errorf("Expected esb_ref recorded, got %q", rec[lockfile.KeyESBRef])
		}
		if rec[lockfile.KeyBrand] != "acme" {
			t.Errorf("Expected brand recorded, got %q", rec[lockfile.KeyBrand])
		}
	})

	t.Run("second identical update is a no-op", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		opts := LockUpdateOptions{
			ToolRoot: toolRoot, ESBDir: esbDir, Brand: "acme", Git: git, Now: fixedNow,
		}
		if _, err := UpdateLock(opts); err != nil {
			t.Fatalf("UpdateLock failed: %v", err)
		}
		opts.Now = func() time.Time { return fixedNow().Add(24 * time.Hour) }
		wrote, err := UpdateLock(opts)
		if err != nil {
			t.Fatalf("UpdateLock failed: %v", err)
		}
		if wrote {
			t.Error("Expected no write for unchanged metadata")
		}
		data, err := os.ReadFile(filepath.Join(toolRoot, LockFileName))
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !strings.Contains(string(data), "2024-05-01T12:00:00Z") {
			t.Error("Expected original timestamp preserved")
		}
	})

	t.Run("owner/repo shorthand expands to a GitHub URL", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		if _, err := UpdateLock(LockUpdateOptions{
			ToolRoot: toolRoot, ESBDir: esbDir, Brand: "acme",
			ESBRepo: "acme-io/esb", Git: git, Now: fixedNow,
		}); err != nil {
			t.Fatalf("UpdateLock failed: %v", err)
		}
		rec, err := lockfile.Load(filepath.Join(toolRoot, LockFileName))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if rec[lockfile.KeyESBRepo] != "https://github.com/acme-io/esb.git" {
			t.Errorf("Expected expanded URL, got %q", rec[lockfile.KeyESBRepo])
		}
	})

	t.Run("commit-hash refs are dropped from esb_ref", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		if _, err := UpdateLock(LockUpdateOptions{
			ToolRoot: toolRoot, ESBDir: esbDir, Brand: "acme",
			ESBRef: "deadbeefdeadbeef", Git: git, Now: fixedNow,
		}); err != nil {
			t.Fatalf("UpdateLock failed: %v", err)
		}
		rec, err := lockfile.Load(filepath.Join(toolRoot, LockFileName))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if rec[lockfile.KeyESBRef] != "" {
			t.Errorf("Expected commit ref dropped, got %q", rec[lockfile.KeyESBRef])
		}
	})

	t.Run("exact tool tag is recorded", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		git.tags[toolRoot] = "v0.3.0"
		if _, err := UpdateLock(LockUpdateOptions{
			ToolRoot: toolRoot, ESBDir: esbDir, Brand: "acme", Git: git, Now: fixedNow,
		}); err != nil {
			t.Fatalf("UpdateLock failed: %v", err)
		}
		rec, err := lockfile.Load(filepath.Join(toolRoot, LockFileName))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if rec[lockfile.KeyToolRef] != "v0.3.0" {
			t.Errorf("Expected tool.ref v0.3.0, got %q", rec[lockfile.KeyToolRef])
		}
	})

	t.Run("missing repo URL fails", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		delete(git.remotes, esbDir)
		if _, err := UpdateLock(LockUpdateOptions{
			ToolRoot: toolRoot, ESBDir: esbDir, Brand: "acme", Git: git, Now: fixedNow,
		}); err == nil {
			t.Error("Expected error without repo URL")
		}
	})

	t.Run("missing brand fails", func(t *testing.T) {
		toolRoot, esbDir, git := newRoots(t)
		if _, err := UpdateLock(LockUpdateOptions{
			ToolRoot: toolRoot, ESBDir: esbDir, Git: git, Now: fixedNow,
		}); err == nil {
			t.Error("Expected error without brand")
		}
	})
}
