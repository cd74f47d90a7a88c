// Package model defines domain types for projboard projects and requirements.
package model

// Project is a client project record supplied by the upstream data source.
// The panel treats it as a read-only snapshot.
type Project struct {
	ID          string
	Name        string
	Client      string
	Description string
	ClientEmail string
	ClientPhone string
	Status      ProjectStatus
	Budget      float64

	// Dates arrive as raw strings because older exports used different
	// field names and formats. StartDate/Deadline are the primary fields;
	// StartedOn/EndDate are legacy aliases still present in old data.
	StartDate string
	StartedOn string
	Deadline  string
	EndDate   string
}

// ResolvedStart returns the project start date, preferring the primary
// field over the legacy alias.
func (p Project) ResolvedStart() string {
	return CoalesceStr(p.StartDate, p.StartedOn)
}

// ResolvedDeadline returns the project deadline, preferring the primary
// field over the legacy alias.
func (p Project) ResolvedDeadline() string {
	return CoalesceStr(p.Deadline, p.EndDate)
}

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
