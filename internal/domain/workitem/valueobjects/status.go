package valueobjects

import "strings"

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusInReview   Status = "IN_REVIEW"
	StatusDone       Status = "DONE"
	StatusBlocked    Status = "BLOCKED"
)

var validStatuses = map[Status]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusInReview:   true,
	StatusDone:       true,
	StatusBlocked:    true,
}

// statusVocabulary maps lowercased spellings seen in tracker exports to a
// Status. Anything not listed falls back to StatusTodo.
var statusVocabulary = map[string]Status{
	"todo":        StatusTodo,
	"to do":       StatusTodo,
	"open":        StatusTodo,
	"new":         StatusTodo,
	"backlog":     StatusTodo,
	"unstarted":   StatusTodo,
	"pending":     StatusTodo,
	"in progress": StatusInProgress,
	"in_progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"doing":       StatusInProgress,
	"started":     StatusInProgress,
	"wip":         StatusInProgress,
	"in review":   StatusInReview,
	"review":      StatusInReview,
	"delivered":   StatusInReview,
	"qa":          StatusInReview,
	"done":        StatusDone,
	"closed":      StatusDone,
	"complete":    StatusDone,
	"completed":   StatusDone,
	"resolved":    StatusDone,
	"accepted":    StatusDone,
	"finished":    StatusDone,
	"blocked":     StatusBlocked,
	"on hold":     StatusBlocked,
	"onhold":      StatusBlocked,
	"stuck":       StatusBlocked,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsDone() bool {
	return s == StatusDone
}

// NormalizeStatus converts free text from an import cell into a Status.
// Exact enum spellings match case-insensitively; unknown input defaults to
// StatusTodo so imported rows always carry a well-defined state.
func NormalizeStatus(raw string) Status {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return StatusTodo
	}
	if st, ok := statusVocabulary[trimmed]; ok {
		return st
	}
	upper := Status(strings.ToUpper(strings.ReplaceAll(trimmed, " ", "_")))
	if upper.IsValid() {
		return upper
	}
	return StatusTodo
}
