package main

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/gp/internal/config"
	"github.com/raphi011/gp/internal/flow"
	"github.com/raphi011/gp/internal/freq"
	"github.com/raphi011/gp/internal/git"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/shell"
	"github.com/raphi011/gp/internal/worktree"
)

var errNotTerminal = errors.New("this command is interactive and needs a terminal on stdin")

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func requireTerminal() error {
	if !stdinIsTerminal() {
		return errNotTerminal
	}
	return nil
}

// session is the repository a command operates on and its effective config.
type session struct {
	repo *git.Repository
	cfg  *config.Config
}

// openSession opens the repository containing the work dir. From inside a
// linked worktree this is the main repository.
func openSession(ctx context.Context) (*session, error) {
	repo, err := git.Open(ctx, config.WorkDirFromContext(ctx))
	if err != nil {
		return nil, err
	}
	cfg, err := config.ForRepo(config.FromContext(ctx), repo.Root())
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debug("repository", "root", repo.Root(), "gitdir", repo.GitDir())
	return &session{repo: repo, cfg: cfg}, nil
}

// controller wires the interactive journeys to the terminal.
func (s *session) controller(ctx context.Context) *flow.Controller {
	return &flow.Controller{
		Repo:   s.repo,
		FS:     worktree.OSFS,
		Prompt: flow.Terminal{},
		Shell:  shell.New(s.cfg.Shell),
		Config: s.cfg,
		Freq:   s.loadFreq(ctx),
	}
}

// loadFreq loads the pick counts. An unreadable store only loses ordering.
func (s *session) loadFreq(ctx context.Context) *freq.Store {
	path := s.cfg.FreqFile
	if path == "" {
		path = freq.DefaultPath(s.repo.GitDir())
	}
	store, err := freq.Load(path)
	if err != nil {
		log.FromContext(ctx).Debug("load branch frequencies", "path", path, "err", err)
	}
	return store
}
