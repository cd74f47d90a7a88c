package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mvanek/projboard/internal/model"
)

const sampleSnapshot = `{
  "projects": [
    {
      "id": "p1",
      "name": "Website Redesign",
      "client": "Acme Corp",
      "status": "In Progress",
      "budget": 45000,
      "start_date": "2025-03-01",
      "startDate": "2025-02-01",
      "deadline": "2025-07-10"
    },
    {
      "id": "p2",
      "name": "Legacy Export",
      "client": "Initech",
      "status": "Archived",
      "startDate": "2024-11-15",
      "end_date": "2025-01-31"
    }
  ],
  "requirements": [
    {
      "id": "r1",
      "projectId": "p1",
      "title": "Wireframes",
      "status": "Done",
      "priority": "High",
      "createdAt": "2025-03-02T09:00:00Z"
    },
    {
      "id": "r2",
      "projectId": "p2",
      "title": "Dump schema",
      "status": "Todo",
      "priority": "Low",
      "createdAt": "2024-11-16T10:00:00Z"
    }
  ]
}`

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(sampleSnapshot))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(snap.Projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(snap.Projects))
	}
	if len(snap.Requirements) != 2 {
		t.Fatalf("got %d requirements, want 2", len(snap.Requirements))
	}

	p1 := snap.Projects[0]
	if p1.StartDate != "2025-03-01" || p1.StartedOn != "2025-02-01" {
		t.Errorf("p1 dates = %q/%q, both generations should load raw", p1.StartDate, p1.StartedOn)
	}
	if p1.ResolvedStart() != "2025-03-01" {
		t.Errorf("ResolvedStart = %q, want current-generation field", p1.ResolvedStart())
	}
	if p1.Budget != 45000 {
		t.Errorf("p1 budget = %v, want 45000", p1.Budget)
	}
}

func TestParse_LegacyOnlyAliases(t *testing.T) {
	snap, err := Parse([]byte(sampleSnapshot))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p2 := snap.Projects[1]
	if p2.ResolvedStart() != "2024-11-15" {
		t.Errorf("ResolvedStart = %q, want legacy startDate fallback", p2.ResolvedStart())
	}
	if p2.ResolvedDeadline() != "2025-01-31" {
		t.Errorf("ResolvedDeadline = %q, want legacy end_date fallback", p2.ResolvedDeadline())
	}
}

func TestParse_UnknownStatusLoads(t *testing.T) {
	snap, err := Parse([]byte(sampleSnapshot))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p2 := snap.Projects[1]
	if p2.Status != model.ProjectStatus("Archived") {
		t.Errorf("status = %q, unknown statuses should load verbatim", p2.Status)
	}
	if p2.Status.Category() != model.CategoryUnknown {
		t.Errorf("category = %q, want fallback", p2.Status.Category())
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed snapshot")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(sampleSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := snap.Project("p1"); !ok {
		t.Error("Project(p1) not found after Load")
	}
	if _, ok := snap.Project("nope"); ok {
		t.Error("Project(nope) unexpectedly found")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
