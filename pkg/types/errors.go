package types

import "errors"

// Value construction errors. Each Parse function returns exactly one of
// these; a value is never observable in an invalid state.
var (
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrNotesTooLong     = errors.New("notes exceed maximum length")
	ErrEmptyProjectName = errors.New("project name must not be empty")
	ErrEmptyTag         = errors.New("tag must not be empty")
	ErrInvalidTag       = errors.New("tag contains invalid characters")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidDueAt     = errors.New("invalid due timestamp")
	ErrInvalidTaskID    = errors.New("invalid task ID")
)

// Status transition errors. A failed transition leaves the task unchanged.
var (
	ErrAlreadyDone = errors.New("task is already done")
	ErrAlreadyOpen = errors.New("task is already open")
)

// ErrUnsupportedSchemaVersion is returned by durable backends when the
// persisted document carries a schema version they do not recognize.
// Backends must fail rather than coerce unknown versions.
var ErrUnsupportedSchemaVersion = errors.New("unsupported schema version")
