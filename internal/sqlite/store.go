// Package sqlite implements the task Store on a SQLite database file. It
// honors the same contract as the JSON file backend: mutations touch only
// in-memory state, Save persists the whole collection, and an unrecognized
// on-disk schema version fails instead of being coerced.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/tidy/pkg/types"
)

// CurrentSchemaVersion is stamped into PRAGMA user_version on first open.
const CurrentSchemaVersion = 1

// Schema DDL for the tasks table. position preserves insertion order
// across a save/load cycle.
const createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    notes TEXT,
    project TEXT NOT NULL,
    tags TEXT NOT NULL,
    status TEXT NOT NULL,
    completed_at TEXT,
    priority TEXT NOT NULL,
    due TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// Store is a Repository persisted to a SQLite file. The database is read
// once on open; Save rewrites the table in a single transaction.
type Store struct {
	db    *sql.DB
	tasks []types.Task
}

// Open connects to the database at path, initializes the schema on first
// use, verifies the schema version, and loads all tasks into memory in
// insertion order.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	tasks, err := loadTasks(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, tasks: tasks}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initSchema creates the tasks table and stamps the schema version, or
// rejects a database written by an unknown newer version.
func initSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	switch version {
	case 0:
		// Fresh database.
		if _, err := db.Exec(createTasks); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		if _, err := db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, CurrentSchemaVersion)); err != nil {
			return fmt.Errorf("stamping schema version: %w", err)
		}
		return nil
	case CurrentSchemaVersion:
		return nil
	default:
		return fmt.Errorf("%w: %d (supported: %d)",
			types.ErrUnsupportedSchemaVersion, version, CurrentSchemaVersion)
	}
}

func loadTasks(db *sql.DB) ([]types.Task, error) {
	rows, err := db.Query(`SELECT id, title, notes, project, tags, status,
		completed_at, priority, due, created_at, updated_at
		FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		var row taskRow
		if err := rows.Scan(&row.id, &row.title, &row.notes, &row.project,
			&row.tags, &row.status, &row.completedAt, &row.priority,
			&row.due, &row.createdAt, &row.updatedAt); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t, err := row.decode()
		if err != nil {
			return nil, fmt.Errorf("decoding task %s: %w", row.id, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// Save rewrites the tasks table to mirror the in-memory collection. The
// delete and inserts share one transaction, so a failure leaves the
// previously persisted rows intact.
func (s *Store) Save() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing tasks: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks
		(id, position, title, notes, project, tags, status, completed_at, priority, due, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range s.tasks {
		row := encodeRow(t)
		if _, err := stmt.Exec(row.id, i, row.title, row.notes, row.project,
			row.tags, row.status, row.completedAt, row.priority, row.due,
			row.createdAt, row.updatedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting task %s: %w", row.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// Add appends a task.
func (s *Store) Add(t types.Task) {
	s.tasks = append(s.tasks, t.Clone())
}

// List returns copies of all tasks in insertion order.
func (s *Store) List() []types.Task {
	out := make([]types.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task with exactly the given ID.
func (s *Store) Get(id types.TaskID) (types.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return types.Task{}, false
}

// Replace overwrites the task with the same ID. It never inserts.
func (s *Store) Replace(t types.Task) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t.Clone()
			return true
		}
	}
	return false
}

// Remove deletes the task with the given ID.
func (s *Store) Remove(id types.TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// SetAll replaces the entire collection.
func (s *Store) SetAll(tasks []types.Task) {
	s.tasks = make([]types.Task, len(tasks))
	for i, t := range tasks {
		s.tasks[i] = t.Clone()
	}
}

// taskRow mirrors one tasks table row with driver-friendly types.
type taskRow struct {
	id          string
	title       string
	notes       sql.NullString
	project     string
	tags        string
	status      string
	completedAt sql.NullString
	priority    string
	due         sql.NullString
	createdAt   string
	updatedAt   string
}

func encodeRow(t types.Task) taskRow {
	row := taskRow{
		id:        t.ID.String(),
		title:     t.Title.String(),
		project:   t.Project.String(),
		tags:      joinTags(t.Tags),
		status:    t.Status.Label(),
		priority:  t.Priority.String(),
		createdAt: t.CreatedAt.Format(time.RFC3339Nano),
		updatedAt: t.UpdatedAt.Format(time.RFC3339Nano),
	}
	if t.Notes != nil {
		row.notes = sql.NullString{String: t.Notes.String(), Valid: true}
	}
	if completed, ok := t.Status.CompletedAt(); ok {
		row.completedAt = sql.NullString{String: completed.Format(time.RFC3339Nano), Valid: true}
	}
	if t.Due != nil {
		row.due = sql.NullString{String: t.Due.Time().Format(time.RFC3339Nano), Valid: true}
	}
	return row
}

// decode rebuilds a task through the value-type constructors.
func (row taskRow) decode() (types.Task, error) {
	id, err := types.ParseTaskID(row.id)
	if err != nil {
		return types.Task{}, err
	}
	title, err := types.ParseTitle(row.title)
	if err != nil {
		return types.Task{}, err
	}
	project, err := types.ParseProjectName(row.project)
	if err != nil {
		return types.Task{}, err
	}
	priority, err := types.ParsePriority(row.priority)
	if err != nil {
		return types.Task{}, err
	}

	t := types.Task{
		ID:       id,
		Title:    title,
		Project:  project,
		Priority: priority,
	}

	switch row.status {
	case types.StatusLabelOpen:
		t.Status = types.StatusOpen()
	case types.StatusLabelDone:
		if !row.completedAt.Valid {
			return types.Task{}, fmt.Errorf("done task %s has no completed_at", row.id)
		}
		completed, err := time.Parse(time.RFC3339Nano, row.completedAt.String)
		if err != nil {
			return types.Task{}, fmt.Errorf("parsing completed_at: %w", err)
		}
		t.Status = types.StatusDone(completed)
	default:
		return types.Task{}, fmt.Errorf("unknown status %q", row.status)
	}

	if row.notes.Valid {
		notes, err := types.ParseNotes(row.notes.String)
		if err != nil {
			return types.Task{}, err
		}
		t.Notes = &notes
	}
	tags, err := splitTags(row.tags)
	if err != nil {
		return types.Task{}, err
	}
	t.Tags = tags
	if row.due.Valid {
		due, err := types.ParseDueAt(row.due.String)
		if err != nil {
			return types.Task{}, err
		}
		t.Due = &due
	}

	t.CreatedAt, err = time.Parse(time.RFC3339Nano, row.createdAt)
	if err != nil {
		return types.Task{}, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339Nano, row.updatedAt)
	if err != nil {
		return types.Task{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}
