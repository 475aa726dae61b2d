package worktree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/raphi011/gp/internal/worktree"
	"github.com/raphi011/gp/internal/worktree/mocks"
)

// fakeFS records removals and fails for paths listed in fail.
type fakeFS struct {
	fail    map[string]error
	removed []string
}

func (f *fakeFS) RemoveAll(path string) error {
	if err, ok := f.fail[path]; ok {
		return err
	}
	f.removed = append(f.removed, path)
	return nil
}

func TestRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	fsys := &fakeFS{}
	rec := linked("x-1")

	b.EXPECT().PruneWorktree(gomock.Any(), "x-1").Return(nil)

	rm := worktree.Remove(ctx(), b, fsys, rec)
	assert.True(t, rm.Removed())
	assert.NoError(t, rm.Failure())
	assert.Equal(t, []string{rec.Path}, fsys.removed)
}

func TestRemove_FilesystemFailureSkipsPrune(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No PruneWorktree expectation: a call would fail the test.
	b := mocks.NewMockBackend(ctrl)
	rec := linked("busy")
	fsys := &fakeFS{fail: map[string]error{rec.Path: errors.New("device busy")}}

	rm := worktree.Remove(ctx(), b, fsys, rec)
	assert.False(t, rm.Removed())
	assert.ErrorIs(t, rm.Err, worktree.ErrRemoveFailed)
	assert.Contains(t, rm.Err.Error(), "device busy")
	assert.NoError(t, rm.PruneErr)
}

func TestRemove_PruneFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	rec := linked("locked")
	b.EXPECT().PruneWorktree(gomock.Any(), "locked").Return(errors.New("worktree is locked"))

	rm := worktree.Remove(ctx(), b, &fakeFS{}, rec)
	assert.True(t, rm.Removed())
	require.Error(t, rm.PruneErr)
	assert.Contains(t, rm.Failure().Error(), "locked")
}

func TestRemove_Primary(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	fsys := &fakeFS{}

	rm := worktree.Remove(ctx(), b, fsys, worktree.Record{Label: worktree.MainLabel, Path: "/src/repo", Primary: true})
	assert.ErrorIs(t, rm.Err, worktree.ErrPrimary)
	assert.Empty(t, fsys.removed)
}
