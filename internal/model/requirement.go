package model

// Requirement is a trackable work item belonging to exactly one project.
type Requirement struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      RequirementStatus
	Priority    Priority

	// CreatedAt doubles as the "completed on" display timestamp for done
	// items; the source data does not track a separate completion time.
	CreatedAt string
}

// IsDone reports whether the requirement counts toward project completion.
// Exactly the status "Done" qualifies; review states do not.
func (r Requirement) IsDone() bool {
	return r.Status == RequirementDone
}
