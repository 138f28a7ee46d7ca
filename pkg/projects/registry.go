// Package projects tracks named whiteboard files so the CLI can switch
// between independent boards without juggling paths by hand.
package projects

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Entry is one registered project file.
type Entry struct {
	Name      string
	Path      string
	CreatedAt time.Time
	LastUsed  time.Time
}

// Registry manages project registration backed by a small sqlite database
// in the data directory.
type Registry struct {
	db      *sql.DB
	dataDir string
}

// NewRegistry opens (creating if needed) the registry under dataDir.
func NewRegistry(dataDir string) (*Registry, error) {
	if err := os.MkdirAll(filepath.Join(dataDir, "projects"), 0755); err != nil {
		return nil, fmt.Errorf("create projects dir: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, "projects.db"))
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}

	r := &Registry{db: db, dataDir: dataDir}
	if err := r.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize registry: %w", err)
	}
	return r, nil
}

func (r *Registry) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		name TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS current (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL REFERENCES projects(name)
	);
	`
	_, err := r.db.Exec(schema)
	return err
}

// Add registers a new named project. The file itself is created lazily on
// the first save.
func (r *Registry) Add(name string) (*Entry, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("invalid project name: %q", name)
	}
	if _, err := r.Get(name); err == nil {
		return nil, fmt.Errorf("project already exists: %s", name)
	}

	e := &Entry{
		Name:      name,
		Path:      filepath.Join(r.dataDir, "projects", name+".json"),
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
	}
	_, err := r.db.Exec(
		"INSERT INTO projects (name, path, created_at, last_used) VALUES (?, ?, ?, ?)",
		e.Name, e.Path, e.CreatedAt, e.LastUsed,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Get retrieves a project by name.
func (r *Registry) Get(name string) (*Entry, error) {
	e := &Entry{}
	err := r.db.QueryRow(
		"SELECT name, path, created_at, last_used FROM projects WHERE name = ?", name,
	).Scan(&e.Name, &e.Path, &e.CreatedAt, &e.LastUsed)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found: %s", name)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List returns all registered projects, most recently used first.
func (r *Registry) List() ([]*Entry, error) {
	rows, err := r.db.Query(
		"SELECT name, path, created_at, last_used FROM projects ORDER BY last_used DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.Name, &e.Path, &e.CreatedAt, &e.LastUsed); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Use makes the named project the active one for subsequent invocations.
func (r *Registry) Use(name string) (*Entry, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(
		"INSERT INTO current (id, name) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
		name,
	); err != nil {
		return nil, err
	}
	if err := r.touch(name); err != nil {
		return nil, err
	}
	return e, nil
}

// Current returns the active project, or nil when none has been selected.
func (r *Registry) Current() (*Entry, error) {
	var name string
	err := r.db.QueryRow("SELECT name FROM current WHERE id = 1").Scan(&name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.Get(name)
}

// ClearCurrent reverts to the shared default project file.
func (r *Registry) ClearCurrent() error {
	_, err := r.db.Exec("DELETE FROM current WHERE id = 1")
	return err
}

// Remove unregisters a project. When purge is set the project file is
// deleted too. Removing the active project clears the selection.
func (r *Registry) Remove(name string, purge bool) error {
	e, err := r.Get(name)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec("DELETE FROM current WHERE name = ?", name); err != nil {
		return err
	}
	if _, err := r.db.Exec("DELETE FROM projects WHERE name = ?", name); err != nil {
		return err
	}
	if purge {
		if err := os.Remove(e.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove project file: %w", err)
		}
	}
	return nil
}

func (r *Registry) touch(name string) error {
	_, err := r.db.Exec("UPDATE projects SET last_used = ? WHERE name = ?", time.Now(), name)
	return err
}

// Close closes the registry database.
func (r *Registry) Close() error {
	return r.db.Close()
}
