// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/gp/internal/ui/styles"
	"github.com/raphi011/gp/internal/worktree"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// WorktreeHeaders are the columns of [WorktreeRow].
var WorktreeHeaders = []string{"LABEL", "BRANCH", "PATH"}

// WorktreeRow returns the table row for r.
func WorktreeRow(r worktree.Record) []string {
	return []string{r.Label, r.Branch, r.Path}
}

// WorktreeTable renders an inventory.
func WorktreeTable(records []worktree.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, WorktreeRow(r))
	}
	return RenderTable(WorktreeHeaders, rows)
}

// PlanHeaders are the columns of [PlanTable].
var PlanHeaders = []string{"LABEL", "BRANCH", "STATUS"}

// PlanTable renders a clean plan: eligible worktrees first, then skipped
// ones with the reason they are kept.
func PlanTable(plan worktree.Plan) string {
	rows := make([][]string, 0, len(plan.Eligible)+len(plan.Skipped))
	for _, r := range plan.Eligible {
		rows = append(rows, []string{r.Label, r.Branch, styles.SuccessStyle.Render("remove")})
	}
	for _, s := range plan.Skipped {
		rows = append(rows, []string{s.Record.Label, s.Record.Branch, styles.MutedStyle.Render("keep: " + s.Reason.Describe())})
	}
	return RenderTable(PlanHeaders, rows)
}
