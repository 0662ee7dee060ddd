package valueobjects

import "strings"

// ColumnType classifies how a display column renders its values.
type ColumnType string

const (
	ColumnText     ColumnType = "text"
	ColumnSelect   ColumnType = "select"
	ColumnUser     ColumnType = "user"
	ColumnDate     ColumnType = "date"
	ColumnLabels   ColumnType = "labels"
	ColumnPriority ColumnType = "priority"
)

var validColumnTypes = map[ColumnType]bool{
	ColumnText:     true,
	ColumnSelect:   true,
	ColumnUser:     true,
	ColumnDate:     true,
	ColumnLabels:   true,
	ColumnPriority: true,
}

func (c ColumnType) String() string {
	return string(c)
}

func (c ColumnType) IsValid() bool {
	return validColumnTypes[c]
}

// InferColumnType guesses a column type for a header the standard-field
// registry did not recognize.
func InferColumnType(header string) ColumnType {
	h := strings.ToLower(strings.TrimSpace(header))
	switch {
	case strings.Contains(h, "date"):
		return ColumnDate
	case strings.Contains(h, "label"), strings.Contains(h, "tag"):
		return ColumnLabels
	case h == "priority":
		return ColumnPriority
	case h == "status", h == "type", h == "resolution":
		return ColumnSelect
	default:
		return ColumnText
	}
}
