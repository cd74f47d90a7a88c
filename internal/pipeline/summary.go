package pipeline

import (
	"time"

	"github.com/mvanek/projboard/internal/dateutil"
	"github.com/mvanek/projboard/internal/model"
)

// Summary is the display-ready view of one project. The presentation
// layer renders it without further computation.
type Summary struct {
	Project model.Project

	// Formatted dates; empty string means unknown/unspecified.
	StartDate string
	Deadline  string
	DaysLeft  string

	// Progress is the unrounded completion percentage in [0, 100].
	Progress float64

	// Requirements is the project-filtered list in original order;
	// Milestones is its completed subset.
	Requirements []model.Requirement
	Milestones   []model.Requirement

	StatusCategory model.StyleCategory

	// Budget is the raw amount; BudgetRevealed says whether the
	// presentation layer may show it or must mask it.
	Budget         float64
	BudgetRevealed bool
}

// BuildSummary assembles the full panel view for one project. The legacy
// date aliases are resolved here (primary field wins), dates are formatted,
// and the requirement aggregates are computed against the injected now.
func BuildSummary(p model.Project, reqs []model.Requirement, now time.Time, budgetRevealed bool) Summary {
	filtered := FilterByProject(reqs, p.ID)

	return Summary{
		Project:        p,
		StartDate:      dateutil.FormatDate(p.ResolvedStart()),
		Deadline:       dateutil.FormatDate(p.ResolvedDeadline()),
		DaysLeft:       dateutil.DaysLeft(p.ResolvedDeadline(), now),
		Progress:       ProgressPercent(filtered),
		Requirements:   filtered,
		Milestones:     Completed(filtered),
		StatusCategory: p.Status.Category(),
		Budget:         p.Budget,
		BudgetRevealed: budgetRevealed,
	}
}
