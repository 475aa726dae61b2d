package worktree

import (
	"github.com/go-git/go-git/v5/plumbing"
)

// Sentinels used in place of labels and branch names.
const (
	MainLabel      = "(main)"
	DetachedBranch = "(detached)"
	UnknownBranch  = "(unknown)"
)

// DefaultRemote is the only remote branches are provisioned from.
const DefaultRemote = "origin"

// Record is one checked-out copy of the repository as seen by a single
// inventory query. Records are never reused across mutations.
type Record struct {
	Label   string // backend name of the worktree; MainLabel for the primary
	Branch  string // short branch name, DetachedBranch or UnknownBranch
	Path    string // absolute worktree root
	Primary bool

	// Stale is set when the backend lists the worktree but its metadata
	// cannot be loaded (missing directory, no path).
	Stale bool
}

// TreeState is the outcome of a working-tree status query.
type TreeState int

const (
	StateUnknown TreeState = iota // status could not be computed
	StateClean
	StateDirty
)

func (s TreeState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// MaybeDirty collapses the state for deletion decisions: anything but
// StateClean may hold local work.
func (s TreeState) MaybeDirty() bool {
	return s != StateClean
}

// Head describes where a worktree's HEAD points.
type Head struct {
	// Branch is the short name of the checked-out branch; empty when detached.
	Branch string
	// Hash is the branch tip. It is zero when HEAD names a branch that has
	// no commit (an unborn branch).
	Hash plumbing.Hash
}

// Detached reports whether HEAD points directly at a commit.
func (h Head) Detached() bool {
	return h.Branch == ""
}

// Upstream is a branch's tracking configuration: the remote and the ref on
// that remote (branch.<name>.remote and branch.<name>.merge).
type Upstream struct {
	Remote string
	Ref    plumbing.ReferenceName
}

// TrackingRef returns the local remote-tracking ref for u,
// e.g. refs/remotes/origin/feature/x.
func (u Upstream) TrackingRef() plumbing.ReferenceName {
	return plumbing.NewRemoteReferenceName(u.Remote, u.Ref.Short())
}

func (u Upstream) String() string {
	return u.Remote + "/" + u.Ref.Short()
}

// UpstreamFor returns the tracking configuration for a local branch created
// from remote branch on the default remote.
func UpstreamFor(remoteBranch string) Upstream {
	return Upstream{Remote: DefaultRemote, Ref: plumbing.NewBranchReferenceName(remoteBranch)}
}

// LinkedEntry is a linked worktree as enumerated by the backend.
type LinkedEntry struct {
	Label    string
	Path     string
	Prunable bool // metadata points at a missing directory
	Locked   bool
}
