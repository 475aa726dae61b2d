package git

import (
	"errors"
	"testing"
)

func TestCheckGit_Available(t *testing.T) {
	t.Parallel()
	// git must be available in CI and dev environments
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}

func TestCheckGit_Missing(t *testing.T) {
	// Cannot use t.Parallel(): t.Setenv mutates process env
	t.Setenv("PATH", t.TempDir())
	if err := CheckGit(); !errors.Is(err, ErrGitNotFound) {
		t.Errorf("CheckGit() = %v, want ErrGitNotFound", err)
	}
}
