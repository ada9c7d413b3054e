package storage

import "context"

// Storage keys for the four top-level records. Each key holds one
// JSON-serialized value.
const (
	KeyDays      = "workout-days"
	KeyExercises = "workout-exercises"
	KeyTemplates = "workout-session-templates"
	KeyTarget    = "workout-target-sessions-per-week"
)

// Store is a string-keyed store of JSON-serialized values. Implementations
// never propagate failures to callers: a failed read reports absent, a
// failed write or delete reports false. Diagnostics are logged inside the
// boundary.
type Store interface {
	// Read returns the raw value for key, or ("", false) when the key is
	// absent or the store is unavailable.
	Read(ctx context.Context, key string) (string, bool)

	// Write stores the raw value under key, reporting success.
	Write(ctx context.Context, key, value string) bool

	// Delete removes key, reporting success. Deleting an absent key
	// succeeds.
	Delete(ctx context.Context, key string) bool
}
