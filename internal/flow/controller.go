package flow

import (
	"context"
	"time"

	"github.com/raphi011/gp/internal/config"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/worktree"
)

// Shell runs an interactive session rooted at dir and blocks until it exits.
type Shell interface {
	Spawn(ctx context.Context, dir string) error
}

// Counter tracks how often remote branches are picked.
type Counter interface {
	Count(branch string) int
	Increment(branch string)
	Persist() error
}

// Fetcher updates remote-tracking branches.
type Fetcher interface {
	Fetch(ctx context.Context, remote string) error
}

// Controller runs the interactive journeys against one repository.
type Controller struct {
	Repo   worktree.Backend
	FS     worktree.FS
	Prompt Prompter
	Shell  Shell
	Config *config.Config

	// Freq ranks remote branches; nil offers them by name only.
	Freq Counter
	// Fetcher, when set, runs before remote branches are listed.
	Fetcher Fetcher
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Controller) config() *config.Config {
	if c.Config != nil {
		return c.Config
	}
	d := config.Default()
	return &d
}

func (c *Controller) fs() worktree.FS {
	if c.FS != nil {
		return c.FS
	}
	return worktree.OSFS
}

// enter spawns the session in dir.
func (c *Controller) enter(ctx context.Context, dir string) error {
	l := log.FromContext(ctx)
	l.Printf("\nEntering %s\n", dir)
	l.Printf("(subshell: type exit to return)\n\n")
	return c.Shell.Spawn(ctx, dir)
}

func cancelled(ctx context.Context) error {
	log.FromContext(ctx).Println("Cancelled.")
	return nil
}
