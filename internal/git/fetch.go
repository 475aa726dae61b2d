package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	sshconfig "github.com/kevinburke/ssh_config"

	"github.com/raphi011/gp/internal/log"
)

// ssh_config lookups, replaceable in tests.
var (
	sshConfigGet    = sshconfig.Get
	sshConfigGetAll = sshconfig.GetAll
)

// Fetch updates the remote-tracking branches of remote. Being up to date
// is not an error.
func (r *Repository) Fetch(ctx context.Context, remote string) error {
	endpoint, remoteURL, err := remoteEndpoint(r.repo, remote)
	if err != nil {
		return err
	}

	opts := &gogit.FetchOptions{RemoteName: remote}
	var usedAgent bool
	if isSSHEndpoint(endpoint) {
		opts.Auth, usedAgent, err = sshAuth(endpoint, remoteURL)
		if err != nil {
			return err
		}
	}

	l := log.FromContext(ctx)
	l.Debug("fetch", "remote", remote, "url", remoteURL, "agent", usedAgent)

	err = r.repo.FetchContext(ctx, opts)
	if err != nil && usedAgent && isSSHAuthFailure(err) {
		l.Debug("ssh agent rejected, trying identity files", "err", err)
		if opts.Auth, err = sshKeyFileAuth(endpoint.Host, sshUser(endpoint), remoteURL); err != nil {
			return err
		}
		err = r.repo.FetchContext(ctx, opts)
	}
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("fetch %s: %w", remote, err)
	}
	return nil
}

func remoteEndpoint(repo *gogit.Repository, name string) (*transport.Endpoint, string, error) {
	remote, err := repo.Remote(name)
	if err != nil {
		return nil, "", fmt.Errorf("remote %s: %w", name, err)
	}
	cfg := remote.Config()
	if cfg == nil || len(cfg.URLs) == 0 {
		return nil, "", fmt.Errorf("remote %q has no URL", name)
	}
	remoteURL := strings.TrimSpace(cfg.URLs[0])
	endpoint, err := transport.NewEndpoint(remoteURL)
	if err != nil {
		return nil, remoteURL, err
	}
	return endpoint, remoteURL, nil
}

func isSSHEndpoint(endpoint *transport.Endpoint) bool {
	switch strings.ToLower(strings.TrimSpace(endpoint.Protocol)) {
	case "ssh", "git+ssh", "ssh+git":
		return true
	default:
		return false
	}
}

// sshUser is the URL user, then the ssh_config User, then "git".
func sshUser(endpoint *transport.Endpoint) string {
	user := strings.TrimSpace(endpoint.User)
	if user == "" {
		user = strings.TrimSpace(sshConfigGet(endpoint.Host, "User"))
	}
	if user == "" {
		user = "git"
	}
	return user
}

// sshAuth prefers the SSH agent. The bool reports whether the agent is used.
func sshAuth(endpoint *transport.Endpoint, remoteURL string) (transport.AuthMethod, bool, error) {
	user := sshUser(endpoint)
	if auth, err := gitssh.NewSSHAgentAuth(user); err == nil {
		return auth, true, nil
	}
	auth, err := sshKeyFileAuth(endpoint.Host, user, remoteURL)
	return auth, false, err
}

func sshKeyFileAuth(host, user, remoteURL string) (transport.AuthMethod, error) {
	var errs []string
	for _, keyPath := range sshIdentityFiles(host, user) {
		auth, err := gitssh.NewPublicKeysFromFile(user, keyPath, "")
		if err == nil {
			return auth, nil
		}
		errs = append(errs, fmt.Sprintf("%s: %v", keyPath, err))
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("unable to configure ssh auth for %q; no usable keys found", remoteURL)
	}
	return nil, fmt.Errorf("unable to configure ssh auth for %q: %s", remoteURL, strings.Join(errs, "; "))
}

func isSSHAuthFailure(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unable to authenticate") ||
		strings.Contains(msg, "attempted methods") ||
		strings.Contains(msg, "permission denied (publickey)")
}

// sshIdentityFiles returns existing key files: IdentityFile entries from
// ssh_config first, then the default key names, without duplicates.
func sshIdentityFiles(host, remoteUser string) []string {
	fromConfig := sshConfigGetAll(host, "IdentityFile")
	files := make([]string, 0, len(fromConfig)+4)
	seen := make(map[string]bool, len(fromConfig)+4)

	add := func(candidate string) {
		path := expandIdentityPath(candidate, host, remoteUser)
		if path == "" || seen[path] {
			return
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, candidate := range fromConfig {
		add(candidate)
	}
	for _, name := range []string{"~/.ssh/id_ed25519", "~/.ssh/id_ecdsa", "~/.ssh/id_rsa"} {
		add(name)
	}
	return files
}

// expandIdentityPath applies the ssh_config tokens %h, %r, %u and %% and
// resolves ~ and relative paths against the home directory.
func expandIdentityPath(raw, host, remoteUser string) string {
	path := strings.Trim(strings.TrimSpace(raw), `"'`)
	if path == "" || strings.EqualFold(path, "none") {
		return ""
	}

	tokens := []string{"%%", "%", "%h", host, "%r", remoteUser}
	if localUser := os.Getenv("USER"); localUser != "" {
		tokens = append(tokens, "%u", localUser)
	}
	// one pass, so "%%h" stays a literal "%h"
	path = strings.NewReplacer(tokens...).Replace(path)

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return filepath.Join(home, ".ssh", path)
}
