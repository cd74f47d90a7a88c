// Package pipeline derives the display values for a project panel from
// raw project and requirement snapshots. Everything here is a pure
// projection: inputs are never mutated and repeated calls with the same
// inputs return identical results.
package pipeline

import (
	"github.com/mvanek/projboard/internal/model"
)

// FilterByProject returns the requirements belonging to the given project,
// in their original relative order. Matching is exact on ProjectID.
func FilterByProject(reqs []model.Requirement, projectID string) []model.Requirement {
	var result []model.Requirement
	for _, r := range reqs {
		if r.ProjectID == projectID {
			result = append(result, r)
		}
	}
	return result
}

// Completed returns the subset of reqs with status Done, order preserved.
func Completed(reqs []model.Requirement) []model.Requirement {
	var result []model.Requirement
	for _, r := range reqs {
		if r.IsDone() {
			result = append(result, r)
		}
	}
	return result
}

// ProgressPercent returns the completion ratio of reqs in [0, 100],
// unrounded so callers choose their own display precision. A project with
// no requirements reports 0 rather than dividing by zero.
func ProgressPercent(reqs []model.Requirement) float64 {
	if len(reqs) == 0 {
		return 0
	}
	done := 0
	for _, r := range reqs {
		if r.IsDone() {
			done++
		}
	}
	return float64(done) / float64(len(reqs)) * 100
}
