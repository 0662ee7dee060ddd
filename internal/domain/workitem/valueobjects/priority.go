package valueobjects

import "strings"

type Priority string

const (
	PriorityHighest Priority = "HIGHEST"
	PriorityHigh    Priority = "HIGH"
	PriorityMedium  Priority = "MEDIUM"
	PriorityLow     Priority = "LOW"
	PriorityLowest  Priority = "LOWEST"
)

var validPriorities = map[Priority]bool{
	PriorityHighest: true,
	PriorityHigh:    true,
	PriorityMedium:  true,
	PriorityLow:     true,
	PriorityLowest:  true,
}

var priorityVocabulary = map[string]Priority{
	"highest":  PriorityHighest,
	"urgent":   PriorityHighest,
	"critical": PriorityHighest,
	"blocker":  PriorityHighest,
	"p0":       PriorityHighest,
	"high":     PriorityHigh,
	"major":    PriorityHigh,
	"p1":       PriorityHigh,
	"medium":   PriorityMedium,
	"normal":   PriorityMedium,
	"standard": PriorityMedium,
	"p2":       PriorityMedium,
	"low":      PriorityLow,
	"minor":    PriorityLow,
	"p3":       PriorityLow,
	"lowest":   PriorityLowest,
	"trivial":  PriorityLowest,
	"p4":       PriorityLowest,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// NormalizePriority converts free text into a Priority, defaulting to
// PriorityMedium for empty or unrecognized input.
func NormalizePriority(raw string) Priority {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return PriorityMedium
	}
	if p, ok := priorityVocabulary[trimmed]; ok {
		return p
	}
	return PriorityMedium
}
