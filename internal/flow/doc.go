// Package flow drives gp's interactive journeys on top of the worktree
// engine.
//
// A [Controller] holds the repository handle and its collaborators: a
// [Prompter] for terminal interaction, a [Shell] for entering worktrees and
// a [Counter] ranking remote branches by how often they were picked. Each
// journey re-queries the inventory after every mutation; records are never
// carried across a deletion.
//
// Journeys:
//   - [Controller.Pick]: choose a remote branch, then create a branch or a worktree from it
//   - [Controller.Browse]: list worktrees, enter one or delete it
//   - [Controller.Clean]: remove every worktree that holds no local work
//
// Cancelling a prompt ends a journey quietly; it is not an error.
package flow
