package plan

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `{
		"issues": [
			{
				"id": 3,
				"title": "Add request signing",
				"description": "Sign outgoing requests with the shared key.",
				"effort_days": 2.5,
				"priority": "high",
				"phase": 1,
				"dependencies": [1, 2],
				"acceptance_criteria": ["Requests carry a signature header"],
				"labels": ["security", "phase-1"]
			}
		]
	}`

	items, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != 3 {
		t.Errorf("Expected ID 3, got %d", item.ID)
	}
	if item.Title != "Add request signing" {
		t.Errorf("Expected title 'Add request signing', got '%s'", item.Title)
	}
	if item.EffortDays != 2.5 {
		t.Errorf("Expected effort 2.5, got %v", item.EffortDays)
	}
	if item.Priority != PRIORITY_HIGH {
		t.Errorf("Expected priority high, got '%s'", item.Priority)
	}
	if item.Phase.CrossCutting || item.Phase.Number != 1 {
		t.Errorf("Expected phase 1, got %v", item.Phase)
	}
	if len(item.Dependencies) != 2 || item.Dependencies[0] != 1 || item.Dependencies[1] != 2 {
		t.Errorf("Expected dependencies [1 2], got %v", item.Dependencies)
	}
	if len(item.AcceptanceCriteria) != 1 {
		t.Errorf("Expected 1 acceptance criterion, got %d", len(item.AcceptanceCriteria))
	}
	if len(item.Labels) != 2 {
		t.Errorf("Expected 2 labels, got %d", len(item.Labels))
	}
}

func TestParseCrossCuttingPhase(t *testing.T) {
	input := `{"issues": [{"id": 1, "title": "CI pipeline", "phase": "cross-cutting"}]}`

	items, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !items[0].Phase.CrossCutting {
		t.Errorf("Expected cross-cutting phase, got %v", items[0].Phase)
	}
	if items[0].Phase.String() != CrossCutting {
		t.Errorf("Expected phase string %q, got %q", CrossCutting, items[0].Phase.String())
	}
}

func TestParseRejectsBadPhase(t *testing.T) {
	cases := []string{
		`{"issues": [{"id": 1, "phase": "later"}]}`,
		`{"issues": [{"id": 1, "phase": 1.5}]}`,
		`{"issues": [{"id": 1, "phase": [1]}]}`,
	}
	for _, input := range cases {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Expected parse error for input %s", input)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"issues": [`)); err == nil {
		t.Error("Expected error for truncated json")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("does-not-exist.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSort(t *testing.T) {
	items := []WorkItem{
		{ID: 7, Phase: Phase{Number: 2}},
		{ID: 2, Phase: Phase{Number: 1}},
		{ID: 9, Phase: Phase{CrossCutting: true}},
		{ID: 1, Phase: Phase{Number: 1}},
		{ID: 4, Phase: Phase{CrossCutting: true}},
	}

	Sort(items)

	want := []int{4, 9, 1, 2, 7}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("Expected order %v, got item %d at position %d", want, items[i].ID, i)
		}
	}
	// Cross-cutting sorts ahead of every numbered phase, even phase 0.
	items = []WorkItem{
		{ID: 1, Phase: Phase{Number: 0}},
		{ID: 2, Phase: Phase{CrossCutting: true}},
	}
	Sort(items)
	if items[0].ID != 2 {
		t.Errorf("Expected cross-cutting item first, got item %d", items[0].ID)
	}
}
