// Package shell starts an interactive session inside a worktree.
//
// The session inherits the terminal and gp blocks until it exits; leaving
// the shell returns control to the caller's directory.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/raphi011/gp/internal/log"
)

// EnvWorktree names the worktree root in the spawned session's environment.
const EnvWorktree = "GP_WORKTREE"

// Spawner runs interactive sessions.
type Spawner struct {
	// Shell is the program to run; empty falls back to $SHELL, then sh.
	Shell string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Spawner attached to the process's standard streams.
func New(shell string) *Spawner {
	return &Spawner{Shell: shell, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Program returns the shell that Spawn will run.
func (s *Spawner) Program() string {
	return Resolve(s.Shell)
}

// Resolve picks configured, then $SHELL, then sh.
func Resolve(configured string) string {
	if configured != "" {
		return configured
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "sh"
}

// Spawn runs the shell in dir and waits for it to exit. A non-zero exit
// status of the session itself is not an error.
func (s *Spawner) Spawn(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("enter %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("enter %s: not a directory", dir)
	}

	program := s.Program()
	l := log.FromContext(ctx)
	done := l.Command(dir, program)

	// Not bound to ctx: an interrupt typed in the session also reaches gp.
	c := exec.Command(program)
	c.Dir = dir
	c.Env = append(os.Environ(), EnvWorktree+"="+dir)
	c.Stdin = s.Stdin
	c.Stdout = s.Stdout
	c.Stderr = s.Stderr

	start := time.Now()
	err = c.Run()
	done(time.Since(start))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		l.Debug("shell exited", "status", exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("start shell %s: %w", program, err)
	}
	return nil
}
