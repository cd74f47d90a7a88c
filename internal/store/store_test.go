package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "panel", "projects.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO projects (id, name, client, status, budget, start_date, deadline)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]any{"p1", "Website Redesign", "Acme Corp", "In Progress", 45000.0, "2025-03-01", "2025-07-10"}},
		{`INSERT INTO projects (id, name, started_on, end_date) VALUES (?, ?, ?, ?)`,
			[]any{"p2", "Archive Export", "2024-11-15", "2025-01-31"}},
		{`INSERT INTO requirements (id, project_id, seq, title, status, priority, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]any{"r2", "p1", 2, "Build pages", "In Progress", "Medium", "2025-03-05"}},
		{`INSERT INTO requirements (id, project_id, seq, title, status, priority, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]any{"r1", "p1", 1, "Wireframes", "Done", "High", "2025-03-02"}},
		{`INSERT INTO requirements (id, project_id, seq, title) VALUES (?, ?, ?, ?)`,
			[]any{"r3", "p2", 1, "Dump schema"}},
	}
	for _, st := range stmts {
		if _, err := s.db.Exec(st.sql, st.args...); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)
	count, err := s.ProjectCount()
	if err != nil {
		t.Fatalf("ProjectCount: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh db has %d projects, want 0", count)
	}
}

func TestLoadProject(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	p, err := s.LoadProject("p1")
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if p.Name != "Website Redesign" || p.Budget != 45000 {
		t.Errorf("got %q/%v, want Website Redesign/45000", p.Name, p.Budget)
	}
	if p.ResolvedDeadline() != "2025-07-10" {
		t.Errorf("ResolvedDeadline = %q", p.ResolvedDeadline())
	}
}

func TestLoadProject_Missing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.LoadProject("nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestLoadProject_NullColumns(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	p, err := s.LoadProject("p2")
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if p.Client != "" || p.Status != "" {
		t.Errorf("null columns should scan empty, got client=%q status=%q", p.Client, p.Status)
	}
	if p.ResolvedStart() != "2024-11-15" {
		t.Errorf("ResolvedStart = %q, want legacy started_on", p.ResolvedStart())
	}
}

func TestLoadProjects_OrderedByName(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	projects, err := s.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].ID != "p2" || projects[1].ID != "p1" {
		t.Errorf("order = %s,%s, want name order p2,p1", projects[0].ID, projects[1].ID)
	}
}

func TestLoadRequirements_SequenceOrder(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	reqs, err := s.LoadRequirements("p1")
	if err != nil {
		t.Fatalf("LoadRequirements: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d requirements, want 2", len(reqs))
	}
	if reqs[0].ID != "r1" || reqs[1].ID != "r2" {
		t.Errorf("order = %s,%s, want seq order r1,r2", reqs[0].ID, reqs[1].ID)
	}
}

func TestLoadAllRequirements(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	reqs, err := s.LoadAllRequirements()
	if err != nil {
		t.Fatalf("LoadAllRequirements: %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("got %d requirements, want 3", len(reqs))
	}
	got := []string{reqs[0].ID, reqs[1].ID, reqs[2].ID}
	want := []string{"r1", "r2", "r3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
