// Package source reads project snapshots from JSON export files. Parsing
// is tolerant: missing dates, unknown status strings, and absent optional
// fields all load without error so the panel can still render something.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mvanek/projboard/internal/model"
)

// Snapshot is one exported data set: all projects plus the full
// requirement collection across them.
type Snapshot struct {
	Projects     []model.Project
	Requirements []model.Requirement
}

// Wire types. Exports have gone through two schema generations, so the
// date fields carry both the current snake_case name and the legacy
// camelCase alias; both are kept raw and resolved downstream.

type snapshotFile struct {
	Projects     []projectRecord     `json:"projects"`
	Requirements []requirementRecord `json:"requirements"`
}

type projectRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Client      string  `json:"client"`
	Description string  `json:"description"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Status      string  `json:"status"`
	Budget      float64 `json:"budget"`
	StartDate   string  `json:"start_date"`
	StartedOn   string  `json:"startDate"` // legacy alias
	Deadline    string  `json:"deadline"`
	EndDate     string  `json:"end_date"` // legacy alias
}

type requirementRecord struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"createdAt"`
}

// Load reads and decodes a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes snapshot JSON.
func Parse(data []byte) (*Snapshot, error) {
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	snap := &Snapshot{
		Projects:     make([]model.Project, 0, len(file.Projects)),
		Requirements: make([]model.Requirement, 0, len(file.Requirements)),
	}

	for _, p := range file.Projects {
		snap.Projects = append(snap.Projects, model.Project{
			ID:          p.ID,
			Name:        p.Name,
			Client:      p.Client,
			Description: p.Description,
			ClientEmail: p.ClientEmail,
			ClientPhone: p.ClientPhone,
			Status:      model.ProjectStatus(p.Status),
			Budget:      p.Budget,
			StartDate:   p.StartDate,
			StartedOn:   p.StartedOn,
			Deadline:    p.Deadline,
			EndDate:     p.EndDate,
		})
	}

	for _, r := range file.Requirements {
		snap.Requirements = append(snap.Requirements, model.Requirement{
			ID:          r.ID,
			ProjectID:   r.ProjectID,
			Title:       r.Title,
			Description: r.Description,
			Status:      model.RequirementStatus(r.Status),
			Priority:    model.Priority(r.Priority),
			CreatedAt:   r.CreatedAt,
		})
	}

	return snap, nil
}

// Project returns the project with the given ID, or false if absent.
func (s *Snapshot) Project(id string) (model.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}
