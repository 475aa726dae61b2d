package flow_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/mock/gomock"

	"github.com/raphi011/gp/internal/config"
	"github.com/raphi011/gp/internal/flow"
	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/ui/prompt"
	"github.com/raphi011/gp/internal/worktree"
	"github.com/raphi011/gp/internal/worktree/mocks"
)

const (
	repoRoot  = "/src/repo"
	cancelled = "<cancel>"
)

var (
	tip   = plumbing.NewHash("1111111111111111111111111111111111111111")
	fixed = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
)

// scriptedPrompter answers prompts from fixed queues and records what it
// was asked. An exhausted queue fails the test.
type scriptedPrompter struct {
	t *testing.T

	selects  []int    // -1 cancels
	actions  []string // cancelled cancels
	confirms []string // "yes", "no" or cancelled
	inputs   []string // cancelled cancels

	selectItems [][]string
	actionKeys  [][]prompt.Key
	questions   []string
	defaults    []bool
	initials    []string
}

func (p *scriptedPrompter) Select(title string, items []string) (int, error) {
	p.t.Helper()
	p.selectItems = append(p.selectItems, items)
	if len(p.selects) == 0 {
		p.t.Fatalf("unexpected Select(%q)", title)
	}
	idx := p.selects[0]
	p.selects = p.selects[1:]
	if idx < 0 {
		return -1, flow.ErrCancelled
	}
	return idx, nil
}

func (p *scriptedPrompter) Action(keys []prompt.Key) (string, error) {
	p.t.Helper()
	p.actionKeys = append(p.actionKeys, keys)
	if len(p.actions) == 0 {
		p.t.Fatal("unexpected Action")
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	if a == cancelled {
		return "", flow.ErrCancelled
	}
	return a, nil
}

func (p *scriptedPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	p.t.Helper()
	p.questions = append(p.questions, question)
	p.defaults = append(p.defaults, defaultYes)
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm(%q)", question)
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	if c == cancelled {
		return false, flow.ErrCancelled
	}
	return c == "yes", nil
}

func (p *scriptedPrompter) Input(title, initial string) (string, error) {
	p.t.Helper()
	p.initials = append(p.initials, initial)
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input(%q)", title)
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	if in == cancelled {
		return "", flow.ErrCancelled
	}
	return in, nil
}

// done asserts every scripted answer was used.
func (p *scriptedPrompter) done() {
	p.t.Helper()
	if n := len(p.selects) + len(p.actions) + len(p.confirms) + len(p.inputs); n > 0 {
		p.t.Errorf("%d scripted answers left unused", n)
	}
}

type fakeShell struct {
	dirs []string
}

func (s *fakeShell) Spawn(_ context.Context, dir string) error {
	s.dirs = append(s.dirs, dir)
	return nil
}

type fakeCounter struct {
	counts     map[string]int
	persisted  int
	persistErr error
}

func (c *fakeCounter) Count(b string) int { return c.counts[b] }
func (c *fakeCounter) Increment(b string) { c.counts[b]++ }
func (c *fakeCounter) Persist() error {
	c.persisted++
	return c.persistErr
}

type fakeFetcher struct {
	remotes []string
	err     error
}

func (f *fakeFetcher) Fetch(_ context.Context, remote string) error {
	f.remotes = append(f.remotes, remote)
	return f.err
}

type fakeFS struct {
	fail    map[string]error
	removed []string
}

func (f *fakeFS) RemoveAll(path string) error {
	if err := f.fail[path]; err != nil {
		return err
	}
	f.removed = append(f.removed, path)
	return nil
}

// harness bundles a controller with its fakes and captured output.
type harness struct {
	ctrl   *gomock.Controller
	repo   *mocks.MockBackend
	prompt *scriptedPrompter
	shell  *fakeShell
	fs     *fakeFS
	c      *flow.Controller
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	ctx    context.Context
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		ctrl:   ctrl,
		repo:   mocks.NewMockBackend(ctrl),
		prompt: &scriptedPrompter{t: t},
		shell:  &fakeShell{},
		fs:     &fakeFS{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.repo.EXPECT().Root().Return(repoRoot).AnyTimes()

	cfg := config.Default()
	h.c = &flow.Controller{
		Repo:   h.repo,
		FS:     h.fs,
		Prompt: h.prompt,
		Shell:  h.shell,
		Config: &cfg,
		Now:    func() time.Time { return fixed },
	}
	h.ctx = output.WithPrinter(log.WithLogger(context.Background(), log.New(h.stderr, false, false)), h.stdout)
	t.Cleanup(h.prompt.done)
	return h
}

// view returns a worktree view on branch with the given status.
func (h *harness) view(branch string, state worktree.TreeState) *mocks.MockView {
	v := mocks.NewMockView(h.ctrl)
	v.EXPECT().Head(gomock.Any()).Return(worktree.Head{Branch: branch, Hash: tip}, nil).AnyTimes()
	v.EXPECT().WorkingTree(gomock.Any()).Return(state, nil).AnyTimes()
	v.EXPECT().TrackedChanges(gomock.Any()).Return(state == worktree.StateDirty, nil).AnyTimes()
	return v
}

// inventory expects one List call returning the primary and linked.
func (h *harness) inventory(linked ...worktree.LinkedEntry) *gomock.Call {
	h.repo.EXPECT().Head(gomock.Any()).Return(worktree.Head{Branch: "main", Hash: tip}, nil)
	return h.repo.EXPECT().Worktrees(gomock.Any()).Return(linked, nil)
}

var errBoom = errors.New("boom")
