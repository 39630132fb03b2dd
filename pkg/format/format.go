package format

import (
	"fmt"
	"strings"

	"github.com/jarz/planter/pkg/index"
	"github.com/jarz/planter/pkg/plan"
)

// Title computes the issue title. Numbered phases get a "Phase N:"
// prefix; cross-cutting items keep their bare title.
func Title(item *plan.WorkItem) string {
	if item.Phase.CrossCutting {
		return item.Title
	}
	return fmt.Sprintf("Phase %d: %s", item.Phase.Number, item.Title)
}

// Body renders the issue body for a work item. Pure: no I/O, no lookups.
func Body(item *plan.WorkItem) string {
	var b strings.Builder

	b.WriteString("## Description\n")
	b.WriteString(item.Description)
	b.WriteString("\n\n## Estimated Effort\n")
	b.WriteString(fmt.Sprintf("%v days\n", item.EffortDays))

	b.WriteString("\n## Priority\n")
	b.WriteString(strings.ToUpper(item.Priority))
	b.WriteString("\n")

	b.WriteString("\n## Dependencies\n")
	if len(item.Dependencies) > 0 {
		for _, dep := range item.Dependencies {
			b.WriteString(fmt.Sprintf("- Issue %d\n", dep))
		}
	} else {
		b.WriteString("None\n")
	}

	b.WriteString("\n## Acceptance Criteria\n")
	for _, ac := range item.AcceptanceCriteria {
		b.WriteString(fmt.Sprintf("- %s\n", ac))
	}

	b.WriteString(fmt.Sprintf("\n## Phase\n%s\n", item.Phase))

	return b.String()
}

// RelatedIssues renders the "Related Issues" section linking dependencies
// that were already created this run. Dependencies with no recorded issue
// number are silently omitted. Returns "" for items with no dependencies.
func RelatedIssues(item *plan.WorkItem, idx *index.IssueIndex) string {
	if len(item.Dependencies) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n## Related Issues\n")
	for _, dep := range item.Dependencies {
		if number, ok := idx.Get(dep); ok {
			b.WriteString(fmt.Sprintf("- Depends on #%d\n", number))
		}
	}
	return b.String()
}
