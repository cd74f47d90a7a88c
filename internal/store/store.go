// Package store reads project and requirement records from a SQLite
// database. The panel only consumes snapshots; an external tool owns the
// data, so everything here is read paths plus schema bootstrap.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvanek/projboard/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides read access to a project database.
type Store struct {
	db *sql.DB
}

// Open opens the database at the given path, creating the schema when
// missing so a fresh path yields a valid empty database.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening project db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

const projectCols = `id, name, client, description, client_email, client_phone,
	status, budget, start_date, started_on, deadline, end_date`

// LoadProject reads one project by ID. sql.ErrNoRows is returned when the
// project does not exist.
func (s *Store) LoadProject(id string) (model.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectCols+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// LoadProjects reads all projects, ordered by name.
func (s *Store) LoadProjects() ([]model.Project, error) {
	rows, err := s.db.Query(`SELECT ` + projectCols + ` FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// LoadRequirements reads the requirements for one project in their stored
// sequence order, which the aggregation layer preserves.
func (s *Store) LoadRequirements(projectID string) ([]model.Requirement, error) {
	rows, err := s.db.Query(`SELECT id, project_id, title, description, status, priority, created_at
		FROM requirements WHERE project_id = ? ORDER BY seq`, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var reqs []model.Requirement
	for rows.Next() {
		var r model.Requirement
		var description, status, priority, createdAt sql.NullString
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Title, &description, &status, &priority, &createdAt); err != nil {
			return nil, err
		}
		r.Description = description.String
		r.Status = model.RequirementStatus(status.String)
		r.Priority = model.Priority(priority.String)
		r.CreatedAt = createdAt.String
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

// LoadAllRequirements reads the full requirement collection, grouped by
// project in sequence order.
func (s *Store) LoadAllRequirements() ([]model.Requirement, error) {
	rows, err := s.db.Query(`SELECT id, project_id, title, description, status, priority, created_at
		FROM requirements ORDER BY project_id, seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var reqs []model.Requirement
	for rows.Next() {
		var r model.Requirement
		var description, status, priority, createdAt sql.NullString
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Title, &description, &status, &priority, &createdAt); err != nil {
			return nil, err
		}
		r.Description = description.String
		r.Status = model.RequirementStatus(status.String)
		r.Priority = model.Priority(priority.String)
		r.CreatedAt = createdAt.String
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

// ProjectCount returns the number of stored projects.
func (s *Store) ProjectCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var client, description, email, phone, status sql.NullString
	var startDate, startedOn, deadline, endDate sql.NullString

	err := row.Scan(&p.ID, &p.Name, &client, &description, &email, &phone,
		&status, &p.Budget, &startDate, &startedOn, &deadline, &endDate)
	if err != nil {
		return model.Project{}, err
	}

	p.Client = client.String
	p.Description = description.String
	p.ClientEmail = email.String
	p.ClientPhone = phone.String
	p.Status = model.ProjectStatus(status.String)
	p.StartDate = startDate.String
	p.StartedOn = startedOn.String
	p.Deadline = deadline.String
	p.EndDate = endDate.String
	return p, nil
}
