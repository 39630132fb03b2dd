package index

// IssueIndex maps plan item ids to the issue numbers GitHub assigned
// during this run. It only lives for one run; nothing is persisted.
type IssueIndex struct {
	mappings map[int]int
}

func NewIssueIndex() *IssueIndex {
	return &IssueIndex{mappings: make(map[int]int)}
}

// Get returns the issue number recorded for an item id, if any.
func (idx *IssueIndex) Get(itemID int) (int, bool) {
	number, ok := idx.mappings[itemID]
	return number, ok
}

func (idx *IssueIndex) Set(itemID, issueNumber int) {
	idx.mappings[itemID] = issueNumber
}

func (idx *IssueIndex) Len() int {
	return len(idx.mappings)
}
