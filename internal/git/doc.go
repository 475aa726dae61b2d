// Package git is the repository backend of gp.
//
// Reads and single-repository writes go through go-git: opening the
// repository, HEAD and ref lookups, working-tree status, branch creation,
// checkout, tracking configuration and ancestry walks. Linked worktrees are
// only partially supported by go-git, so their lifecycle uses the git CLI
// (via package cmd):
//
//   - [Repository.Worktrees]: git worktree list --porcelain
//   - [Repository.AddWorktree]: git worktree add
//
// [Repository.PruneWorktree] deletes a single worktree's metadata directory
// directly so that unrelated stale entries are left alone.
//
// # Opening
//
// [Open] accepts any directory inside a working tree. When that directory
// belongs to a linked worktree (a gitdir under <common>/worktrees/), the main
// repository is opened instead (see [MainRepoPath]), so every operation sees
// the same primary worktree. Submodules and repositories created with
// --separate-git-dir are their own primary.
//
// # Fetching
//
// [Repository.Fetch] fetches a remote with go-git. SSH remotes authenticate
// through the SSH agent and fall back to identity files named in
// ~/.ssh/config or the usual default key paths.
package git
