// Shared helpers for tidy CLI commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dukaforge/tidy/internal/app"
	"github.com/dukaforge/tidy/internal/jsonfile"
	"github.com/dukaforge/tidy/internal/sqlite"
	"github.com/dukaforge/tidy/pkg/types"
)

// Data file names inside the data directory, one per backend.
const (
	jsonFileName   = "db.json"
	sqliteFileName = "tasks.db"
)

// openStore resolves the data directory and opens the configured backend.
// The returned close function must be called before the process exits; for
// the JSON file backend it is a no-op.
func openStore() (types.Store, func() error, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{Backend: configBackend, DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		store, err := sqlite.Open(filepath.Join(dataDir, sqliteFileName))
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("store opened", zap.String("backend", cfg.Backend), zap.String("data_dir", dataDir))
		return store, store.Close, nil
	default:
		store, err := jsonfile.LoadOrInit(filepath.Join(dataDir, jsonFileName))
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("store opened", zap.String("backend", cfg.Backend), zap.String("path", store.Path()))
		return store, func() error { return nil }, nil
	}
}

// dataFileExists reports whether the configured backend's data file is
// already present, without creating anything.
func dataFileExists() (bool, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return false, err
	}
	name := jsonFileName
	if configBackend == types.BackendSQLite {
		name = sqliteFileName
	}
	_, err = os.Stat(filepath.Join(dataDir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// resolveTaskID turns user input (full ID or unique prefix) into a task ID,
// printing a helpful message and exiting on failure. An ambiguous prefix
// lists the matching candidates.
func resolveTaskID(svc *app.Service, input string) types.TaskID {
	id, err := svc.Resolve(input)
	if err == nil {
		return id
	}

	var ambiguous *app.AmbiguousError
	if errors.As(err, &ambiguous) {
		fmt.Fprintf(os.Stderr, "%q matches %d tasks:\n", ambiguous.Input, len(ambiguous.Candidates))
		for _, c := range ambiguous.Candidates {
			fmt.Fprintf(os.Stderr, "  %s  %s\n", c.ShortID, c.Title)
		}
		os.Exit(exitUserError)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitUserError)
	return types.TaskID{} // unreachable
}

// saveStore persists the store and exits on failure. Durability is only
// guaranteed once Save returns nil.
func saveStore(store types.Store) {
	if err := store.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "save:", err)
		os.Exit(exitSysError)
	}
}
