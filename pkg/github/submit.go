package github

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jarz/planter/pkg/format"
	"github.com/jarz/planter/pkg/index"
	"github.com/jarz/planter/pkg/plan"
)

// Status is the outcome of one work item's submission.
type Status int

const (
	// StatusCreated: the issue exists, Number is set.
	StatusCreated Status = iota
	// StatusSkipped: dry run, nothing was submitted.
	StatusSkipped
	// StatusFailed: the create call failed; the item is abandoned.
	StatusFailed
	// StatusRateLimited: the create call hit a rate limit; the item is
	// abandoned after the cooldown.
	StatusRateLimited
)

// ItemResult is the tagged outcome for one work item.
type ItemResult struct {
	ID     int
	Title  string
	Status Status
	Number int
	Err    error
}

// Submitter creates one issue per work item, strictly in the order given.
// Items that fail are never retried; the run continues with the next item.
type Submitter struct {
	creator IssueCreator
	index   *index.IssueIndex

	DryRun bool
	// CreateDelay is the pause after each successful creation, to stay
	// well under GitHub's request budget.
	CreateDelay time.Duration
	// RateLimitDelay is the cooldown after a detected rate limit error.
	RateLimitDelay time.Duration
}

// NewSubmitter creates a Submitter with the production delays. creator
// may be nil when only dry runs are performed.
func NewSubmitter(creator IssueCreator, idx *index.IssueIndex) *Submitter {
	return &Submitter{
		creator:        creator,
		index:          idx,
		CreateDelay:    time.Second,
		RateLimitDelay: 60 * time.Second,
	}
}

// Run submits every item and returns one ItemResult per item, in input
// order. Numbers of created issues are recorded in the index so later
// items can reference them in their Related Issues section.
func (s *Submitter) Run(ctx context.Context, items []plan.WorkItem) []ItemResult {
	results := make([]ItemResult, 0, len(items))

	for i := range items {
		item := &items[i]
		title := format.Title(item)

		if s.DryRun {
			fmt.Printf("Would create: [%d] %s\n", item.ID, title)
			fmt.Printf("  Labels: %s\n", strings.Join(item.Labels, ", "))
			fmt.Printf("  Priority: %s\n\n", item.Priority)
			results = append(results, ItemResult{ID: item.ID, Title: title, Status: StatusSkipped})
			continue
		}

		body := format.Body(item) + format.RelatedIssues(item, s.index)

		fmt.Printf("Creating: [%d] %s\n", item.ID, title)
		number, err := s.creator.CreateIssue(ctx, title, body, item.Labels)
		if err != nil {
			if IsRateLimit(err) {
				log.Printf("Rate limit hit on item %d, waiting %s before continuing: %v", item.ID, s.RateLimitDelay, err)
				time.Sleep(s.RateLimitDelay)
				results = append(results, ItemResult{ID: item.ID, Title: title, Status: StatusRateLimited, Err: err})
			} else {
				log.Printf("Error creating issue for item %d: %v", item.ID, err)
				results = append(results, ItemResult{ID: item.ID, Title: title, Status: StatusFailed, Err: err})
			}
			continue
		}

		s.index.Set(item.ID, number)
		fmt.Printf("  Created issue #%d\n", number)
		time.Sleep(s.CreateDelay)

		results = append(results, ItemResult{ID: item.ID, Title: title, Status: StatusCreated, Number: number})
	}

	return results
}
