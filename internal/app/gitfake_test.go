package app

import (
	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// fakeGit implements gitmeta.Provider against fixed per-directory answers.
type fakeGit struct {
	commits map[string]string
	tags    map[string]string
	remotes map[string]string
}

func (f *fakeGit) CurrentCommit(dir string) (string, error) {
	commit, ok := f.commits[dir]
	if !ok {
		return "", branding.NewError(branding.GitFailed, "git failed (rev-parse HEAD): not a repository "+dir)
	}
	return commit, nil
}

func (f *fakeGit) ExactTag(dir string) (string, bool) {
	tag, ok := f.tags[dir]
	return tag, ok
}

func (f *fakeGit) RemoteURL(dir, remote string) (string, bool) {
	url, ok := f.remotes[dir]
	return url, ok
}
