package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	PRIORITY_LOW    = "low"
	PRIORITY_MEDIUM = "medium"
	PRIORITY_HIGH   = "high"
)

// CrossCutting is the reserved phase value that sorts before every
// numbered phase.
const CrossCutting = "cross-cutting"

// Phase is either a numbered stage or the cross-cutting marker. In the
// input JSON it appears as a plain integer or the string "cross-cutting";
// anything else is rejected at parse time rather than miscompared later.
type Phase struct {
	CrossCutting bool
	Number       int
}

// UnmarshalJSON implements the json.Unmarshaler interface for Phase.
func (p *Phase) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != CrossCutting {
			return fmt.Errorf("invalid phase %q: expected %q or an integer", s, CrossCutting)
		}
		*p = Phase{CrossCutting: true}
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid phase %s: expected %q or an integer", string(b), CrossCutting)
	}
	*p = Phase{Number: n}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Phase.
func (p Phase) MarshalJSON() ([]byte, error) {
	if p.CrossCutting {
		return json.Marshal(CrossCutting)
	}
	return json.Marshal(p.Number)
}

func (p Phase) String() string {
	if p.CrossCutting {
		return CrossCutting
	}
	return strconv.Itoa(p.Number)
}

// WorkItem is one planned unit of work to be turned into a tracker issue.
type WorkItem struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	EffortDays         float64  `json:"effort_days"`
	Priority           string   `json:"priority"`
	Phase              Phase    `json:"phase"`
	Dependencies       []int    `json:"dependencies"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Labels             []string `json:"labels"`
}

// Document is the top-level shape of an issues.json file.
type Document struct {
	Issues []WorkItem `json:"issues"`
}
