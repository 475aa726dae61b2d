package worktree

import (
	"context"
	"fmt"

	"github.com/raphi011/gp/internal/log"
)

// List returns the primary worktree followed by every linked worktree in
// backend order. A linked worktree that cannot be opened is still listed,
// with Branch set to UnknownBranch. Only a failure to enumerate at all is
// returned as an error.
func List(ctx context.Context, b Backend) ([]Record, error) {
	primary := Record{
		Label:   MainLabel,
		Branch:  DetachedBranch,
		Path:    b.Root(),
		Primary: true,
	}
	if head, err := b.Head(ctx); err == nil && !head.Detached() {
		primary.Branch = head.Branch
	}

	entries, err := b.Worktrees(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnumerate, err)
	}

	records := make([]Record, 0, len(entries)+1)
	records = append(records, primary)
	for _, e := range entries {
		records = append(records, linkedRecord(ctx, b, e))
	}
	return records, nil
}

func linkedRecord(ctx context.Context, b Backend, e LinkedEntry) Record {
	r := Record{
		Label:  e.Label,
		Branch: UnknownBranch,
		Path:   e.Path,
		Stale:  e.Prunable || e.Path == "",
	}
	if r.Stale {
		return r
	}

	v, err := b.Open(ctx, e.Path)
	if err != nil {
		log.FromContext(ctx).Debug("open worktree", "label", e.Label, "err", err)
		return r
	}

	r.Branch = DetachedBranch
	if head, err := v.Head(ctx); err == nil && !head.Detached() {
		r.Branch = head.Branch
	}
	return r
}

// Find returns the record whose label, branch or path equals target.
// Labels win over branches, branches over paths.
func Find(records []Record, target string) (Record, bool) {
	for _, match := range []func(Record) bool{
		func(r Record) bool { return r.Label == target },
		func(r Record) bool { return r.Branch == target },
		func(r Record) bool { return r.Path == target },
	} {
		for _, r := range records {
			if match(r) {
				return r, true
			}
		}
	}
	return Record{}, false
}
