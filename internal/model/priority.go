package model

// Priority is the stated priority of a requirement.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Severity is an ordered rank derived from Priority; higher means more
// urgent. It exists so callers can compare priorities numerically.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// Severity maps a priority to its rank. Unrecognized priorities rank as
// SeverityLow rather than failing.
func (p Priority) Severity() Severity {
	switch p {
	case PriorityHigh:
		return SeverityHigh
	case PriorityMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// String returns the raw priority text for display.
func (p Priority) String() string {
	return string(p)
}
