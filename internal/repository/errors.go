package repository

import "errors"

// ErrNotFound is returned by lookup operations when no matching record
// exists. Callers are expected to treat it as a graceful no-op condition,
// not a fault: the UI may hold stale references after an external change.
var ErrNotFound = errors.New("not found")
