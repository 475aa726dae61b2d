package worktree_test

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/mock/gomock"

	"github.com/raphi011/gp/internal/worktree"
	"github.com/raphi011/gp/internal/worktree/mocks"
)

var (
	localTip    = plumbing.NewHash("1111111111111111111111111111111111111111")
	upstreamTip = plumbing.NewHash("2222222222222222222222222222222222222222")
	remoteTip   = plumbing.NewHash("3333333333333333333333333333333333333333")
)

// viewAnswers holds what a mocked worktree view returns. The zero value plus a
// branch describes a worktree that is safe to delete.
type viewAnswers struct {
	state     worktree.TreeState
	stateErr  error
	head      worktree.Head
	headErr   error
	localErr  error
	upErr     error
	upHash    plumbing.Hash
	upHashErr error
	ahead     int
	behind    int
	aheadErr  error
}

func safeAnswers(branch string) viewAnswers {
	return viewAnswers{
		state:  worktree.StateClean,
		head:   worktree.Head{Branch: branch, Hash: localTip},
		upHash: upstreamTip,
	}
}

func newView(ctrl *gomock.Controller, s viewAnswers) *mocks.MockView {
	v := mocks.NewMockView(ctrl)
	v.EXPECT().WorkingTree(gomock.Any()).Return(s.state, s.stateErr).AnyTimes()
	v.EXPECT().Head(gomock.Any()).Return(s.head, s.headErr).AnyTimes()
	v.EXPECT().LocalBranch(gomock.Any(), s.head.Branch).Return(s.head.Hash, s.localErr).AnyTimes()
	v.EXPECT().Upstream(gomock.Any(), s.head.Branch).
		Return(worktree.UpstreamFor(s.head.Branch), s.upErr).AnyTimes()
	v.EXPECT().ResolveUpstream(gomock.Any(), worktree.UpstreamFor(s.head.Branch)).
		Return(s.upHash, s.upHashErr).AnyTimes()
	v.EXPECT().AheadBehind(gomock.Any(), s.head.Hash, s.upHash).Return(s.ahead, s.behind, s.aheadErr).AnyTimes()
	return v
}

func ctx() context.Context {
	return context.Background()
}
