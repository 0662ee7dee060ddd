package workitem

import (
	"fmt"
	"regexp"
	"strconv"
)

// IssueIDPrefix prefixes every auto-generated issue id.
const IssueIDPrefix = "TASK-"

var autoIssueIDPattern = regexp.MustCompile(`^TASK-(\d+)$`)

// NumberAllocator hands out monotonically increasing issue ids for rows that
// arrive without one. It is a pure per-import counter: the seed is recomputed
// from the ids observed in the store at import start, and collisions with
// concurrent imports are absorbed by the store's uniqueness constraint plus
// the batch writer's skip path. There is no shared mutable state.
type NumberAllocator struct {
	next int
}

// NewNumberAllocator seeds the counter at one past the highest numeric suffix
// among the given ids that match the auto-generated pattern. Ids in other
// formats are ignored.
func NewNumberAllocator(existingIDs []string) *NumberAllocator {
	max := 0
	for _, id := range existingIDs {
		m := autoIssueIDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return &NumberAllocator{next: max + 1}
}

// Next returns the next issue id and advances the counter.
func (a *NumberAllocator) Next() string {
	id := fmt.Sprintf("%s%d", IssueIDPrefix, a.next)
	a.next++
	return id
}

// Peek returns the id Next would produce without advancing.
func (a *NumberAllocator) Peek() string {
	return fmt.Sprintf("%s%d", IssueIDPrefix, a.next)
}

// IsAutoGenerated reports whether an issue id matches the auto-generated
// pattern.
func IsAutoGenerated(issueID string) bool {
	return autoIssueIDPattern.MatchString(issueID)
}
