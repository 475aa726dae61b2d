package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/gp/internal/log"
	"github.com/raphi011/gp/internal/output"
	"github.com/raphi011/gp/internal/ui/prompt"
	"github.com/raphi011/gp/internal/worktree"
)

// Browse actions.
const (
	ActionEnter  = "enter"
	ActionDelete = "delete"
	ActionBack   = "back"
)

// browseState is a step of the worktree browser.
type browseState int

const (
	stateListing browseState = iota
	stateSelected
	stateConfirmingDelete
	stateEntering
)

func (s browseState) String() string {
	switch s {
	case stateListing:
		return "listing"
	case stateSelected:
		return "selected"
	case stateConfirmingDelete:
		return "confirming-delete"
	case stateEntering:
		return "entering"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func browseKeys(primary bool) []prompt.Key {
	keys := []prompt.Key{{Keys: []string{"enter"}, Label: "↵", Help: "cd", Action: ActionEnter}}
	if !primary {
		keys = append(keys, prompt.Key{Keys: []string{"d"}, Label: "d", Help: "delete", Action: ActionDelete})
	}
	return append(keys,
		prompt.Key{Keys: []string{"esc", "q"}, Label: "esc", Help: "back", Action: ActionBack},
		prompt.Key{Keys: []string{"ctrl+c"}, Label: "ctrl+c", Help: "quit", Action: ActionCancel},
	)
}

// browseItem renders a record as a selectable line.
func browseItem(r worktree.Record) string {
	return fmt.Sprintf("%-24s %-32s %s", r.Label, r.Branch, r.Path)
}

// Browse lists the repository's worktrees and lets the user enter one or
// delete a linked one. It returns after entering a worktree or when the
// user cancels the list.
func (c *Controller) Browse(ctx context.Context) error {
	l := log.FromContext(ctx)

	var (
		state   = stateListing
		current worktree.Record
	)
	for {
		l.Debug("browse", "state", state)

		switch state {
		case stateListing:
			records, err := worktree.List(ctx, c.Repo)
			if err != nil {
				return err
			}
			items := make([]string, len(records))
			for i, r := range records {
				items[i] = browseItem(r)
			}
			idx, err := c.Prompt.Select("Worktree:", items)
			if errors.Is(err, ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			current = records[idx]
			state = stateSelected

		case stateSelected:
			action, err := c.Prompt.Action(browseKeys(current.Primary))
			if errors.Is(err, ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			switch action {
			case ActionEnter:
				state = stateEntering
			case ActionDelete:
				if current.Primary {
					return worktree.ErrPrimary
				}
				state = stateConfirmingDelete
			case ActionBack:
				state = stateListing
			default:
				return nil
			}

		case stateConfirmingDelete:
			ok, err := c.Prompt.Confirm(deleteQuestion(ctx, c.Repo, current), false)
			if err != nil && !errors.Is(err, ErrCancelled) {
				return err
			}
			if ok {
				c.delete(ctx, current)
			}
			state = stateListing

		case stateEntering:
			return c.enter(ctx, current.Path)
		}
	}
}

// deleteQuestion warns when the worktree may hold local changes. A tree
// whose status cannot be read counts as dirty.
func deleteQuestion(ctx context.Context, b worktree.Backend, r worktree.Record) string {
	if worktree.WorkingTreeState(ctx, b, r.Path).MaybeDirty() {
		return fmt.Sprintf("⚠ worktree %q has uncommitted changes. Delete anyway?", r.Label)
	}
	return fmt.Sprintf("Delete worktree %q?", r.Label)
}

func (c *Controller) delete(ctx context.Context, r worktree.Record) {
	rm := worktree.Remove(ctx, c.Repo, c.fs(), r)
	report(ctx, rm)
}

// report prints the outcome of one removal.
func report(ctx context.Context, rm worktree.Removal) {
	l := log.FromContext(ctx)
	if rm.Err != nil {
		l.Warnf("✗ %v", rm.Err)
		return
	}
	if rm.PruneErr != nil {
		l.Warnf("%v", rm.PruneErr)
	}
	output.FromContext(ctx).Printf("✓ Deleted worktree %s (%s)\n", rm.Record.Label, rm.Record.Path)
}
