package worktree

import (
	"context"
)

// Skipped is a linked worktree that failed evaluation.
type Skipped struct {
	Record Record
	Reason Reason
}

// Plan partitions the linked worktrees of a repository.
type Plan struct {
	Eligible []Record
	Skipped  []Skipped
}

// Empty reports whether there are no linked worktrees at all.
func (p Plan) Empty() bool {
	return len(p.Eligible) == 0 && len(p.Skipped) == 0
}

// Scan lists the repository's linked worktrees and evaluates each.
func Scan(ctx context.Context, b Backend) (Plan, error) {
	records, err := List(ctx, b)
	if err != nil {
		return Plan{}, err
	}

	var plan Plan
	for _, r := range records {
		if r.Primary {
			continue
		}
		if v := Evaluate(ctx, b, r); v.Eligible {
			plan.Eligible = append(plan.Eligible, r)
		} else {
			plan.Skipped = append(plan.Skipped, Skipped{Record: r, Reason: v.Reason})
		}
	}
	return plan, nil
}

// Report summarizes a bulk removal.
type Report struct {
	Removals []Removal
}

// Removed counts worktrees whose directory was deleted.
func (r Report) Removed() int {
	n := 0
	for _, rm := range r.Removals {
		if rm.Removed() {
			n++
		}
	}
	return n
}

// Failed counts worktrees that are still on disk.
func (r Report) Failed() int {
	return len(r.Removals) - r.Removed()
}

// Clean removes every record, continuing past failures. onRemoval, if set,
// is called after each attempt.
func Clean(ctx context.Context, b Backend, fsys FS, records []Record, onRemoval func(Removal)) Report {
	var report Report
	for _, r := range records {
		rm := Remove(ctx, b, fsys, r)
		report.Removals = append(report.Removals, rm)
		if onRemoval != nil {
			onRemoval(rm)
		}
	}
	return report
}
