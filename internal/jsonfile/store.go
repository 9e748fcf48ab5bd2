// Package jsonfile implements the durable task Store backed by a single
// versioned JSON file. Saves follow the temp-write, fsync, atomic-rename
// protocol so the file on disk is never missing or truncated.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dukaforge/tidy/pkg/types"
)

// Store is a Repository persisted to one JSON document. Mutations touch
// only in-memory state; Save writes the whole collection.
type Store struct {
	path  string
	tasks []types.Task
}

// LoadOrInit opens the store at path. An existing file is read in full and
// decoded by schema version. A missing file initializes an empty store:
// parent directories are created and an empty document is written through
// the atomic save protocol.
func LoadOrInit(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
			}
		}
		s := &Store{path: path}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	tasks, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return &Store{path: path, tasks: tasks}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save serializes the current tasks under the current schema version and
// atomically replaces the target file: write to a colocated temp file,
// fsync it, rename it onto the target, then best-effort fsync of the
// containing directory. Any failure before the rename leaves the previous
// file contents intact.
func (s *Store) Save() error {
	data, err := encodeDocument(s.tasks)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	// Directory durability is advisory: a failure here does not undo an
	// otherwise complete save.
	syncDir(dir)
	return nil
}

// syncDir flushes directory metadata so the rename itself survives a
// crash. Failures are tolerated.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = d.Sync()
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
