package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/liftlog/internal/storage"
	log "github.com/sirupsen/logrus"
)

// Import restores a backup document into the store under one of two
// policies. Replace overwrites each storage key with the imported value
// verbatim, removing keys the document omits. Merge concatenates imported
// and existing records, de-duplicating by day id and by case-insensitive
// name for exercises and templates; imported entries win.
//
// A field failing its array-type check aborts the import with a
// descriptive error. Writes happen field by field, so an abort can leave
// fields imported earlier already applied.
func Import(ctx context.Context, store storage.Store, doc *Document, replace bool) error {
	if doc == nil {
		return fmt.Errorf("invalid data format")
	}
	if doc.Version != "" && doc.Version != Version {
		log.Warnf("importing data from version %s, current version is %s", doc.Version, Version)
	}

	if replace {
		return importReplace(ctx, store, doc)
	}
	return importMerge(ctx, store, doc)
}

func importReplace(ctx context.Context, store storage.Store, doc *Document) error {
	for _, rec := range []struct {
		key   string
		raw   json.RawMessage
		label string
	}{
		{storage.KeyDays, doc.Days, "days"},
		{storage.KeyExercises, doc.Exercises, "exercises"},
		{storage.KeyTemplates, doc.Templates, "templates"},
	} {
		if isNull(rec.raw) {
			store.Delete(ctx, rec.key)
			continue
		}
		if !isJSONArray(rec.raw) {
			return fmt.Errorf("invalid %s data format", rec.label)
		}
		store.Write(ctx, rec.key, compact(rec.raw))
	}

	if doc.Target == nil {
		store.Delete(ctx, storage.KeyTarget)
	} else if *doc.Target > 0 {
		store.Write(ctx, storage.KeyTarget, strconv.Itoa(*doc.Target))
	}

	return nil
}

func importMerge(ctx context.Context, store storage.Store, doc *Document) error {
	if !isNull(doc.Days) {
		if err := mergeRecord(ctx, store, storage.KeyDays, doc.Days, "days", idKey); err != nil {
			return err
		}
	}
	if !isNull(doc.Exercises) {
		if err := mergeRecord(ctx, store, storage.KeyExercises, doc.Exercises, "exercises", nameKey); err != nil {
			return err
		}
	}
	if !isNull(doc.Templates) {
		if err := mergeRecord(ctx, store, storage.KeyTemplates, doc.Templates, "templates", nameKey); err != nil {
			return err
		}
	}
	if doc.Target != nil {
		store.Write(ctx, storage.KeyTarget, strconv.Itoa(*doc.Target))
	}
	return nil
}

// mergeRecord concatenates imported entries ahead of existing ones and
// keeps the first entry seen per key, so imported versions shadow existing
// ones.
func mergeRecord(ctx context.Context, store storage.Store, key string, imported json.RawMessage, label string, keyOf func(json.RawMessage) string) error {
	var incoming []json.RawMessage
	if err := json.Unmarshal(imported, &incoming); err != nil {
		return fmt.Errorf("invalid %s data format", label)
	}

	var existing []json.RawMessage
	if raw, ok := store.Read(ctx, key); ok {
		if err := json.Unmarshal([]byte(raw), &existing); err != nil {
			return fmt.Errorf("existing %s data is corrupt: %w", label, err)
		}
	}

	seen := make(map[string]bool)
	unique := make([]json.RawMessage, 0, len(incoming)+len(existing))
	for _, elem := range append(incoming, existing...) {
		k := keyOf(elem)
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, elem)
	}

	data, err := json.Marshal(unique)
	if err != nil {
		return fmt.Errorf("encoding merged %s: %w", label, err)
	}
	store.Write(ctx, key, string(data))
	return nil
}

// idKey extracts the de-duplication key for day records.
func idKey(elem json.RawMessage) string {
	var shape struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(elem, &shape)
	return shape.ID
}

// nameKey extracts the case-insensitive de-duplication key for exercise
// and template records.
func nameKey(elem json.RawMessage) string {
	var shape struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(elem, &shape)
	return strings.ToLower(shape.Name)
}

// isNull reports whether a raw field was absent or JSON null.
func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// compact normalizes a raw JSON value to its compact encoding before it is
// written back to the store.
func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
