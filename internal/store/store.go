// Package store provides the storage layer for motionlab.
//
// It implements the Store interface using SQLite with WAL mode and a small
// schema: one table for user-created templates, one for whole-project
// snapshots. The DBService struct is the primary entry point for all
// database operations.
package store

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for template and project persistence.
// This abstraction allows for mocking in tests and potential future
// backends beyond SQLite.
type Store interface {
	// InsertTemplate persists a user-created template.
	InsertTemplate(t *Template) error
	// ListTemplates returns all user templates in creation order.
	ListTemplates() ([]*Template, error)
	// DeleteTemplate removes a user template by id. Unknown ids are a no-op.
	DeleteTemplate(templateID string) error

	// SaveProject persists a project snapshot, replacing any existing
	// snapshot with the same id.
	SaveProject(p *Project) error
	// GetProject returns the project with the given id, or sql.ErrNoRows.
	GetProject(projectID string) (*Project, error)
	// ListProjects returns all projects, most recently updated first.
	ListProjects() ([]*Project, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// Template is a user-saved style preset. Rotate is in degrees.
type Template struct {
	TemplateID  string  `json:"template_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Rotate      float64 `json:"rotate"`
	PathText    string  `json:"path_text"`
	CreatedAt   int64   `json:"created_at"`
}

// Project is a whole-project snapshot. Data is an opaque JSON blob owned
// by the editor; the store never inspects it.
type Project struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Data      string `json:"data"`
	UpdatedAt int64  `json:"updated_at"`
}

// DBService implements the Store interface using SQLite.
// It manages the database connection, prepared statements, and ensures
// thread-safe access through a read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtInsertTemplate *sql.Stmt
	stmtDeleteTemplate *sql.Stmt
	stmtSaveProject    *sql.Stmt
}

// NewDBService creates a new database service, initializes the schema,
// and prepares frequently-used statements.
//
// The path parameter specifies the SQLite database file location.
// Use ":memory:" for in-memory databases (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

// initSchema reads the embedded schema.sql and executes it.
func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtInsertTemplate, err = s.db.Prepare(`
		INSERT INTO templates (template_id, name, description, color, rotate, path_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(template_id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			color = excluded.color,
			rotate = excluded.rotate,
			path_text = excluded.path_text
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertTemplate: %w", err)
	}

	s.stmtDeleteTemplate, err = s.db.Prepare(`
		DELETE FROM templates WHERE template_id = ?
	`)
	if err != nil {
		return fmt.Errorf("preparing DeleteTemplate: %w", err)
	}

	s.stmtSaveProject, err = s.db.Prepare(`
		INSERT INTO projects (project_id, name, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			name = excluded.name,
			data = excluded.data,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing SaveProject: %w", err)
	}

	return nil
}

// InsertTemplate persists a user-created template. Saving an existing id
// updates the stored preset in place.
func (s *DBService) InsertTemplate(t *Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtInsertTemplate.Exec(
		t.TemplateID, t.Name, t.Description, t.Color, t.Rotate, t.PathText,
		t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting template %s: %w", t.TemplateID, err)
	}
	return nil
}

// ListTemplates returns all user templates in creation order, so the
// selectable list is stable across restarts.
func (s *DBService) ListTemplates() ([]*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT template_id, name, description, color, rotate, path_text, created_at
		FROM templates
		ORDER BY created_at ASC, template_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var templates []*Template
	for rows.Next() {
		t := &Template{}
		if err := rows.Scan(
			&t.TemplateID, &t.Name, &t.Description, &t.Color, &t.Rotate,
			&t.PathText, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes a user template by id.
func (s *DBService) DeleteTemplate(templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtDeleteTemplate.Exec(templateID); err != nil {
		return fmt.Errorf("deleting template %s: %w", templateID, err)
	}
	return nil
}

// SaveProject persists a project snapshot wholesale.
func (s *DBService) SaveProject(p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtSaveProject.Exec(p.ProjectID, p.Name, p.Data, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving project %s: %w", p.ProjectID, err)
	}
	return nil
}

// GetProject returns the project with the given id.
func (s *DBService) GetProject(projectID string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := &Project{}
	err := s.db.QueryRow(`
		SELECT project_id, name, data, updated_at
		FROM projects
		WHERE project_id = ?
	`, projectID).Scan(&p.ProjectID, &p.Name, &p.Data, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying project %s: %w", projectID, err)
	}
	return p, nil
}

// ListProjects returns all projects, most recently updated first.
func (s *DBService) ListProjects() ([]*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT project_id, name, data, updated_at
		FROM projects
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.Data, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Close gracefully shuts down the database, closing all prepared
// statements and the underlying connection.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{
		s.stmtInsertTemplate, s.stmtDeleteTemplate, s.stmtSaveProject,
	}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}
