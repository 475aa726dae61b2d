// Package worktree is the worktree lifecycle engine.
//
// It inventories the primary working directory and every linked worktree,
// decides whether a linked worktree is safe to delete, provisions new local
// branches (optionally in a new worktree) from remote branches, and removes
// worktrees in filesystem-then-metadata order.
//
// The engine never touches git directly. Every call receives an explicit
// [Backend] handle; internal/git provides the real implementation and
// package mocks a generated one for tests.
//
// # Safety
//
// [Evaluate] is conservative: any backend error or ambiguous answer yields an
// ineligible [Verdict] with the [Reason] of the first failing check. The
// working-tree status is the tri-state [TreeState]; [StateUnknown] is treated as
// dirty only at the evaluator boundary.
package worktree
