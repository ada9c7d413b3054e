package backup

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/storage"
)

// Export snapshots all four storage records into a backup document. Records
// that are missing or not JSON arrays are exported as null rather than
// aborting: a backup of a partially corrupt store still captures whatever
// is intact.
func Export(ctx context.Context, store storage.Store, now time.Time) *Document {
	doc := &Document{
		Version:    Version,
		ExportDate: now.UTC().Format(time.RFC3339),
	}

	for _, rec := range []struct {
		key  string
		dest *json.RawMessage
	}{
		{storage.KeyDays, &doc.Days},
		{storage.KeyExercises, &doc.Exercises},
		{storage.KeyTemplates, &doc.Templates},
	} {
		raw, ok := store.Read(ctx, rec.key)
		if !ok || !isJSONArray([]byte(raw)) {
			continue
		}
		*rec.dest = json.RawMessage(raw)
	}

	target := repository.DefaultTarget
	if raw, ok := store.Read(ctx, storage.KeyTarget); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			target = n
		}
	}
	doc.Target = &target

	return doc
}
