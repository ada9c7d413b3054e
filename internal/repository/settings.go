package repository

import (
	"context"
	"strconv"

	"github.com/alexanderramin/liftlog/internal/storage"
)

// DefaultTarget is the weekly session target used before the user sets one.
const DefaultTarget = 3

// SettingsRepo is the repository over the single weekly-target setting.
type SettingsRepo struct {
	store storage.Store
}

// NewSettingsRepo creates a SettingsRepo backed by the given store.
func NewSettingsRepo(store storage.Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Target returns the configured sessions-per-week target, falling back to
// the default when unset or unparsable.
func (r *SettingsRepo) Target(ctx context.Context) int {
	raw, ok := r.store.Read(ctx, storage.KeyTarget)
	if !ok {
		return DefaultTarget
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultTarget
	}
	return n
}

// SetTarget stores the weekly target, clamped to [1,7].
func (r *SettingsRepo) SetTarget(ctx context.Context, target int) bool {
	if target < 1 {
		target = 1
	}
	if target > 7 {
		target = 7
	}
	return r.store.Write(ctx, storage.KeyTarget, strconv.Itoa(target))
}
