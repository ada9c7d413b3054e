package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Version is the backup document schema version.
const Version = "1.0"

// Document is the top-level JSON structure of a backup file: a snapshot of
// the four storage records tagged with a schema version and export time.
// The record fields stay raw so a replace-import can restore them verbatim.
type Document struct {
	Version    string          `json:"version"`
	ExportDate string          `json:"exportDate"`
	Days       json.RawMessage `json:"days"`
	Exercises  json.RawMessage `json:"exercises"`
	Templates  json.RawMessage `json:"templates"`
	Target     *int            `json:"target,omitempty"`
}

// DefaultFilename returns the conventional backup filename for a given
// date, e.g. workout-tracker-backup-2025-06-30.json.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("workout-tracker-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// Load reads and parses a backup JSON file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &doc, nil
}

// WriteFile serializes a document to path as indented JSON.
func (d *Document) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}

// isJSONArray reports whether raw parses as a JSON array.
func isJSONArray(raw []byte) bool {
	var elems []json.RawMessage
	return json.Unmarshal(raw, &elems) == nil
}
