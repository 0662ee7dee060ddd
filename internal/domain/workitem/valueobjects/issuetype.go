package valueobjects

import "strings"

type IssueType string

const (
	TypeTask    IssueType = "Task"
	TypeBug     IssueType = "Bug"
	TypeStory   IssueType = "Story"
	TypeEpic    IssueType = "Epic"
	TypeSubtask IssueType = "Subtask"
)

var validIssueTypes = map[IssueType]bool{
	TypeTask:    true,
	TypeBug:     true,
	TypeStory:   true,
	TypeEpic:    true,
	TypeSubtask: true,
}

var issueTypeVocabulary = map[string]IssueType{
	"task":        TypeTask,
	"chore":       TypeTask,
	"improvement": TypeTask,
	"bug":         TypeBug,
	"defect":      TypeBug,
	"story":       TypeStory,
	"feature":     TypeStory,
	"new feature": TypeStory,
	"user story":  TypeStory,
	"epic":        TypeEpic,
	"subtask":     TypeSubtask,
	"sub-task":    TypeSubtask,
	"sub task":    TypeSubtask,
}

// issueTypeCodes remaps numeric type codes found in exports from legacy
// trackers, which ship type ids instead of labels.
var issueTypeCodes = map[string]IssueType{
	"1": TypeBug,
	"2": TypeStory,
	"3": TypeTask,
	"4": TypeTask,
	"5": TypeSubtask,
	"6": TypeEpic,
}

func (t IssueType) String() string {
	return string(t)
}

func (t IssueType) IsValid() bool {
	return validIssueTypes[t]
}

// NormalizeIssueType converts free text or a numeric type code into an
// IssueType, defaulting to TypeTask.
func NormalizeIssueType(raw string) IssueType {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return TypeTask
	}
	if t, ok := issueTypeVocabulary[trimmed]; ok {
		return t
	}
	if t, ok := issueTypeCodes[trimmed]; ok {
		return t
	}
	return TypeTask
}
