package worktree_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/raphi011/gp/internal/worktree"
	"github.com/raphi011/gp/internal/worktree/mocks"
)

var errNotFound = errors.New("reference not found")

func TestBranchName(t *testing.T) {
	assert.Equal(t, "feature/x-20240101000000", worktree.BranchName("feature/x", "20240101000000"))
}

func checkoutBackend(ctrl *gomock.Controller, tracked bool) *mocks.MockBackend {
	b := mocks.NewMockBackend(ctrl)
	b.EXPECT().Root().Return("/src/repo").AnyTimes()
	b.EXPECT().ResolveRemoteBranch(gomock.Any(), "origin", "feature/x").Return(remoteTip, nil)
	b.EXPECT().BranchExists(gomock.Any(), "feature/x-1").Return(false, nil)

	primary := mocks.NewMockView(ctrl)
	primary.EXPECT().TrackedChanges(gomock.Any()).Return(tracked, nil)
	b.EXPECT().Open(gomock.Any(), "/src/repo").Return(primary, nil)
	return b
}

func TestCreateBranchAndCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := checkoutBackend(ctrl, false)
	gomock.InOrder(
		b.EXPECT().CreateBranch(gomock.Any(), "feature/x-1", remoteTip).Return(nil),
		b.EXPECT().Checkout(gomock.Any(), "feature/x-1").Return(nil),
		b.EXPECT().SetUpstream(gomock.Any(), "feature/x-1", worktree.Upstream{
			Remote: "origin",
			Ref:    "refs/heads/feature/x",
		}).Return(nil),
	)

	p, err := worktree.CreateBranchAndCheckout(ctx(), b, worktree.Request{
		RemoteBranch: "feature/x",
		NewBranch:    "feature/x-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "feature/x-1", p.Branch)
	assert.Equal(t, remoteTip, p.Commit)
	assert.Equal(t, "origin/feature/x", p.Upstream.String())
	assert.Equal(t, "/src/repo", p.Path)
}

func TestCreateBranchAndCheckout_Blocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := checkoutBackend(ctrl, true)

	_, err := worktree.CreateBranchAndCheckout(ctx(), b, worktree.Request{
		RemoteBranch: "feature/x",
		NewBranch:    "feature/x-1",
	})
	assert.ErrorIs(t, err, worktree.ErrCheckoutBlocked)
	assert.False(t, worktree.IsPartial(err))
}

func TestCreateBranchAndCheckout_Preconditions(t *testing.T) {
	t.Run("remote ref missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := mocks.NewMockBackend(ctrl)
		b.EXPECT().ResolveRemoteBranch(gomock.Any(), "origin", "nope").
			Return(remoteTip, worktree.ErrRemoteRefNotFound)

		_, err := worktree.CreateBranchAndCheckout(ctx(), b, worktree.Request{RemoteBranch: "nope", NewBranch: "nope-1"})
		assert.ErrorIs(t, err, worktree.ErrRemoteRefNotFound)
		assert.Contains(t, err.Error(), "origin/nope")
	})

	t.Run("name collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := mocks.NewMockBackend(ctrl)
		b.EXPECT().ResolveRemoteBranch(gomock.Any(), "origin", "main").Return(remoteTip, nil)
		b.EXPECT().BranchExists(gomock.Any(), "main-1").Return(true, nil)

		_, err := worktree.CreateBranchAndCheckout(ctx(), b, worktree.Request{RemoteBranch: "main", NewBranch: "main-1"})
		assert.ErrorIs(t, err, worktree.ErrBranchExists)
	})

	t.Run("invalid name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := mocks.NewMockBackend(ctrl)

		_, err := worktree.CreateBranchAndCheckout(ctx(), b, worktree.Request{RemoteBranch: "main", NewBranch: "bad..name"})
		assert.Error(t, err)
	})
}

func TestCreateBranchAndCheckout_ConfigWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := checkoutBackend(ctrl, false)
	b.EXPECT().CreateBranch(gomock.Any(), "feature/x-1", remoteTip).Return(nil)
	b.EXPECT().Checkout(gomock.Any(), "feature/x-1").Return(nil)
	b.EXPECT().SetUpstream(gomock.Any(), "feature/x-1", gomock.Any()).Return(errors.New("read-only"))

	_, err := worktree.CreateBranchAndCheckout(ctx(), b, worktree.Request{RemoteBranch: "feature/x", NewBranch: "feature/x-1"})
	assert.ErrorIs(t, err, worktree.ErrConfigWrite)
	assert.True(t, worktree.IsPartial(err))
}

func TestCreateBranchAndWorktree(t *testing.T) {
	target := filepath.Join(t.TempDir(), "feature", "x-1")

	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	gomock.InOrder(
		b.EXPECT().ResolveRemoteBranch(gomock.Any(), "origin", "feature/x").Return(remoteTip, nil),
		b.EXPECT().BranchExists(gomock.Any(), "feature/x-1").Return(false, nil),
		b.EXPECT().CreateBranch(gomock.Any(), "feature/x-1", remoteTip).Return(nil),
		b.EXPECT().AddWorktree(gomock.Any(), target, "feature/x-1").Return(nil),
		b.EXPECT().SetUpstream(gomock.Any(), "feature/x-1", worktree.UpstreamFor("feature/x")).Return(nil),
	)

	p, err := worktree.CreateBranchAndWorktree(ctx(), b, worktree.Request{
		RemoteBranch: "feature/x",
		NewBranch:    "feature/x-1",
		TargetPath:   target,
	})
	require.NoError(t, err)
	assert.Equal(t, target, p.Path)
	assert.Equal(t, "origin/feature/x", p.Upstream.String())
}

func TestCreateBranchAndWorktree_PartialFailure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "x-1")

	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	b.EXPECT().ResolveRemoteBranch(gomock.Any(), "origin", "feature/x").Return(remoteTip, nil)
	b.EXPECT().BranchExists(gomock.Any(), "feature/x-1").Return(false, nil)
	b.EXPECT().CreateBranch(gomock.Any(), "feature/x-1", remoteTip).Return(nil)
	b.EXPECT().AddWorktree(gomock.Any(), target, "feature/x-1").Return(errors.New("fatal: disk full"))
	// No SetUpstream and no branch deletion: the branch is left in place.

	_, err := worktree.CreateBranchAndWorktree(ctx(), b, worktree.Request{
		RemoteBranch: "feature/x",
		NewBranch:    "feature/x-1",
		TargetPath:   target,
	})
	require.Error(t, err)

	var partial *worktree.PartialError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "created branch feature/x-1", partial.Done)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCreateBranchAndWorktree_TargetExists(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)

	_, err := worktree.CreateBranchAndWorktree(ctx(), b, worktree.Request{
		RemoteBranch: "feature/x",
		NewBranch:    "feature/x-1",
		TargetPath:   target,
	})
	assert.ErrorContains(t, err, "already exists")
}
