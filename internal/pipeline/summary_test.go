package pipeline

import (
	"testing"
	"time"

	"github.com/mvanek/projboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectFixture() model.Project {
	return model.Project{
		ID:          "px",
		Name:        "Site Relaunch",
		Client:      "Acme Corp",
		Status:      model.ProjectInProgress,
		Budget:      45000,
		StartedOn:   "2025-02-01", // legacy field only
		Deadline:    "2025-07-10",
		EndDate:     "2025-08-01", // legacy alias loses to primary
	}
}

func TestBuildSummary_Assembles(t *testing.T) {
	now := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	s := BuildSummary(projectFixture(), reqFixture(), now, false)

	assert.Equal(t, "Feb 1, 2025", s.StartDate, "legacy start field resolves")
	assert.Equal(t, "Jul 10, 2025", s.Deadline, "primary deadline wins over legacy")
	assert.Equal(t, "15 days", s.DaysLeft)
	assert.Equal(t, 40.0, s.Progress)
	assert.Equal(t, model.CategoryActive, s.StatusCategory)
	assert.Equal(t, 45000.0, s.Budget)
	assert.False(t, s.BudgetRevealed)

	require.Len(t, s.Requirements, 5)
	require.Len(t, s.Milestones, 2)
	assert.Equal(t, "r1", s.Milestones[0].ID)
	assert.Equal(t, "r4", s.Milestones[1].ID)
}

func TestBuildSummary_RevealedFlagPassesThrough(t *testing.T) {
	s := BuildSummary(projectFixture(), nil, time.Now(), true)
	assert.True(t, s.BudgetRevealed)
}

func TestBuildSummary_NoRequirements(t *testing.T) {
	s := BuildSummary(projectFixture(), nil, time.Now(), false)
	assert.Equal(t, 0.0, s.Progress)
	assert.Empty(t, s.Requirements)
	assert.Empty(t, s.Milestones)
}

func TestBuildSummary_MissingDates(t *testing.T) {
	p := model.Project{ID: "p1", Name: "Bare", Status: model.ProjectPlanning}
	s := BuildSummary(p, nil, time.Now(), false)
	assert.Equal(t, "", s.StartDate)
	assert.Equal(t, "", s.Deadline)
	assert.Equal(t, "", s.DaysLeft)
	assert.Equal(t, model.CategoryPlanning, s.StatusCategory)
}

func TestBuildSummary_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	first := BuildSummary(projectFixture(), reqFixture(), now, false)
	second := BuildSummary(projectFixture(), reqFixture(), now, false)
	assert.Equal(t, first, second)
}
