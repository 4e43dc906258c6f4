package gitmeta

import (
	"testing"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// Interface conformance.
var _ Provider = (*GitProvider)(nil)

func TestCurrentCommitOutsideRepo(t *testing.T) {
	p := NewProvider()
	_, err := p.CurrentCommit(t.TempDir())
	if err == nil {
		t.Skip("unexpected git repository above the temp dir")
	}
	bErr, ok := err.(*branding.Error)
	if !ok {
		t.Fatalf("Expected *branding.Error, got %T", err)
	}
	if bErr.Type != branding.GitFailed {
		t.Errorf("Expected GitFailed, got %v", bErr.Type)
	}
}

func TestExactTagOutsideRepo(t *testing.T) {
	p := NewProvider()
	if tag, ok := p.ExactTag(t.TempDir()); ok {
		t.Errorf("Expected no exact tag outside a repo, got %q", tag)
	}
}

func TestRemoteURLOutsideRepo(t *testing.T) {
	p := NewProvider()
	if url, ok := p.RemoteURL(t.TempDir(), "origin"); ok {
		t.Errorf("Expected no remote outside a repo, got %q", url)
	}
}
