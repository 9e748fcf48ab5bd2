// Package types defines the task domain model: validated value types, the
// Task entity and its status state machine, the tri-state TaskPatch, the
// Repository and Store ports, and the standard error values shared by every
// storage backend.
package types
