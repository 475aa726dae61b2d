package worktree

import (
	"context"
	"errors"

	"github.com/raphi011/gp/internal/log"
)

// Reason explains why a worktree is not eligible for deletion.
type Reason string

// Reasons in evaluation order.
const (
	ReasonLoadFailure            Reason = "load-failure"
	ReasonOpenFailure            Reason = "open-failure"
	ReasonDirtyWorkingTree       Reason = "dirty-working-tree"
	ReasonNoHead                 Reason = "no-head"
	ReasonDetachedHead           Reason = "detached-head"
	ReasonHeadUnresolvable       Reason = "head-unresolvable"
	ReasonNoLocalBranch          Reason = "no-local-branch"
	ReasonNoUpstream             Reason = "no-upstream"
	ReasonUpstreamUnresolvable   Reason = "upstream-unresolvable"
	ReasonAheadOfUpstream        Reason = "ahead-of-upstream"
	ReasonGraphComparisonFailure Reason = "graph-comparison-failure"
)

var reasonText = map[Reason]string{
	ReasonLoadFailure:            "worktree metadata cannot be loaded",
	ReasonOpenFailure:            "cannot open repository",
	ReasonDirtyWorkingTree:       "uncommitted changes",
	ReasonNoHead:                 "no HEAD",
	ReasonDetachedHead:           "HEAD is detached",
	ReasonHeadUnresolvable:       "HEAD cannot be resolved",
	ReasonNoLocalBranch:          "local branch not found",
	ReasonNoUpstream:             "no upstream branch",
	ReasonUpstreamUnresolvable:   "upstream branch cannot be resolved",
	ReasonAheadOfUpstream:        "unpushed commits",
	ReasonGraphComparisonFailure: "cannot compare with upstream",
}

// Describe returns a human-readable explanation.
func (r Reason) Describe() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return string(r)
}

// Verdict is the result of evaluating one linked worktree.
// The zero value is not eligible.
type Verdict struct {
	Eligible bool
	Reason   Reason // empty when Eligible
}

func eligible() Verdict { return Verdict{Eligible: true} }

func ineligible(r Reason) Verdict { return Verdict{Reason: r} }

func (v Verdict) String() string {
	if v.Eligible {
		return "eligible"
	}
	return "ineligible(" + string(v.Reason) + ")"
}

// Evaluate decides whether the linked worktree r can be deleted without
// losing work. Checks run in a fixed order and the first failing one
// determines the reason. Backend errors never yield Eligible.
func Evaluate(ctx context.Context, b Backend, r Record) Verdict {
	l := log.FromContext(ctx)

	// The primary worktree has no linked metadata to load.
	if r.Primary || r.Stale || r.Path == "" {
		return ineligible(ReasonLoadFailure)
	}

	v, err := b.Open(ctx, r.Path)
	if err != nil {
		l.Debug("evaluate: open", "label", r.Label, "err", err)
		return ineligible(ReasonOpenFailure)
	}

	state, err := v.WorkingTree(ctx)
	if err != nil {
		l.Debug("evaluate: status", "label", r.Label, "err", err)
	}
	if state.MaybeDirty() {
		return ineligible(ReasonDirtyWorkingTree)
	}

	head, err := v.Head(ctx)
	if err != nil {
		return ineligible(ReasonNoHead)
	}
	if head.Detached() {
		return ineligible(ReasonDetachedHead)
	}
	if head.Hash.IsZero() {
		return ineligible(ReasonHeadUnresolvable)
	}

	local, err := v.LocalBranch(ctx, head.Branch)
	if err != nil {
		return ineligible(ReasonNoLocalBranch)
	}

	up, err := v.Upstream(ctx, head.Branch)
	if err != nil {
		if !errors.Is(err, ErrNoUpstream) {
			l.Debug("evaluate: upstream", "label", r.Label, "err", err)
		}
		return ineligible(ReasonNoUpstream)
	}
	upstream, err := v.ResolveUpstream(ctx, up)
	if err != nil || upstream.IsZero() {
		return ineligible(ReasonUpstreamUnresolvable)
	}

	ahead, _, err := v.AheadBehind(ctx, local, upstream)
	if err != nil {
		l.Debug("evaluate: ahead/behind", "label", r.Label, "err", err)
		return ineligible(ReasonGraphComparisonFailure)
	}
	if ahead > 0 {
		return ineligible(ReasonAheadOfUpstream)
	}
	return eligible()
}

// WorkingTreeState opens the worktree at path and reports its status.
// An open failure yields StateUnknown.
func WorkingTreeState(ctx context.Context, b Backend, path string) TreeState {
	v, err := b.Open(ctx, path)
	if err != nil {
		return StateUnknown
	}
	state, err := v.WorkingTree(ctx)
	if err != nil {
		return StateUnknown
	}
	return state
}
