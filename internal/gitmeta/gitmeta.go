// Package gitmeta exposes the version-control lookups the tool depends on
// as an injected capability, so orchestration logic is testable without a
// real git checkout.
package gitmeta

import (
	"os"
	"os/exec"
	"strings"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/debug"
)

// Provider answers version-control metadata questions for a directory.
type Provider interface {
	// CurrentCommit returns the HEAD commit hash of the repository at dir.
	CurrentCommit(dir string) (string, error)

	// ExactTag returns the tag pointing exactly at HEAD, if any.
	ExactTag(dir string) (string, bool)

	// RemoteURL returns the URL of the named remote, if configured.
	RemoteURL(dir, remote string) (string, bool)
}

// GitProvider implements Provider by shelling out to git.
type GitProvider struct{}

// NewProvider creates the production git-backed provider.
func NewProvider() Provider {
	return &GitProvider{}
}

// CurrentCommit returns the HEAD commit hash of the repository at dir.
func (p *GitProvider) CurrentCommit(dir string) (string, error) {
	return p.run(dir, "rev-parse", "HEAD")
}

// ExactTag returns the tag pointing exactly at HEAD, if any.
func (p *GitProvider) ExactTag(dir string) (string, bool) {
	tag, err := p.run(dir, "describe", "--tags", "--exact-match")
	if err != nil {
		return "", false
	}
	return tag, true
}

// RemoteURL returns the URL of the named remote, if configured.
func (p *GitProvider) RemoteURL(dir, remote string) (string, bool) {
	url, err := p.run(dir, "remote", "get-url", remote)
	if err != nil {
		return "", false
	}
	return url, true
}

func (p *GitProvider) run(dir string, args ...string) (string, error) {
	debug.Debug("[gitmeta] git -C %s %s", dir, strings.Join(args, " "))
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", branding.NewErrorWithCause(branding.GitFailed,
			"git failed ("+strings.Join(args, " ")+"): "+strings.TrimSpace(stderr.String()), err)
	}
	return strings.TrimSpace(string(out)), nil
}
