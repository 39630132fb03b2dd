package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Parse decodes an issues document from an io.Reader.
func Parse(r io.Reader) ([]WorkItem, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode issues json: %w", err)
	}
	return doc.Issues, nil
}

// LoadFile reads and parses an issues.json file. The os.Open error is
// returned as-is so callers can distinguish a missing file from a
// malformed one.
func LoadFile(path string) ([]WorkItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Sort orders items so that dependencies are likely created before the
// items that reference them: cross-cutting before any numbered phase,
// then ascending phase number, then ascending id. Best effort only — it
// helps when dependency ids are smaller or in an earlier phase.
func Sort(items []WorkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Phase.CrossCutting != b.Phase.CrossCutting {
			return a.Phase.CrossCutting
		}
		if a.Phase.Number != b.Phase.Number {
			return a.Phase.Number < b.Phase.Number
		}
		return a.ID < b.ID
	})
}
