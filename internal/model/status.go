package model

// ProjectStatus is the lifecycle state of a project as stored upstream.
// Unknown values are tolerated and map to the fallback style category.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectCompleted  ProjectStatus = "Completed"
)

// StyleCategory is the semantic display category the presentation layer
// keys its colors off. It is deliberately smaller than the status set.
type StyleCategory string

const (
	CategoryActive   StyleCategory = "active"
	CategoryDone     StyleCategory = "done"
	CategoryPlanning StyleCategory = "planning"
	CategoryBlocked  StyleCategory = "blocked"
	CategoryUnknown  StyleCategory = "unknown"
)

// Category maps a project status to its display category. Total: any
// unrecognized status falls back to CategoryUnknown.
func (s ProjectStatus) Category() StyleCategory {
	switch s {
	case ProjectInProgress:
		return CategoryActive
	case ProjectCompleted:
		return CategoryDone
	case ProjectPlanning:
		return CategoryPlanning
	case ProjectOnHold:
		return CategoryBlocked
	default:
		return CategoryUnknown
	}
}

// String returns the raw status text for display.
func (s ProjectStatus) String() string {
	return string(s)
}

// RequirementStatus is the workflow state of a requirement.
type RequirementStatus string

const (
	RequirementTodo       RequirementStatus = "Todo"
	RequirementInProgress RequirementStatus = "In Progress"
	RequirementInReview   RequirementStatus = "In Review"
	RequirementDone       RequirementStatus = "Done"
)

// Category maps a requirement status to its display category, with the
// same fallback rule as project statuses.
func (s RequirementStatus) Category() StyleCategory {
	switch s {
	case RequirementDone:
		return CategoryDone
	case RequirementInProgress, RequirementInReview:
		return CategoryActive
	case RequirementTodo:
		return CategoryPlanning
	default:
		return CategoryUnknown
	}
}

// String returns the raw status text for display.
func (s RequirementStatus) String() string {
	return string(s)
}
