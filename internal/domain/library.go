package domain

import "strings"

// GlobalExercise is the canonical library record for an exercise name,
// independent of any specific session. Name is a case-insensitive unique key.
type GlobalExercise struct {
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	Color     string `json:"color,omitempty"`
	Type      string `json:"type,omitempty"`
}

// MuscleGroup tags an exercise with a body area and a display color.
type MuscleGroup struct {
	Name  string
	Color string
}

// MuscleGroups is the fixed catalog of muscle-group types.
var MuscleGroups = []MuscleGroup{
	{Name: "Chest", Color: "#ef4444"},
	{Name: "Back", Color: "#3b82f6"},
	{Name: "Shoulders", Color: "#8b5cf6"},
	{Name: "Biceps", Color: "#22c55e"},
	{Name: "Triceps", Color: "#f97316"},
	{Name: "Legs", Color: "#eab308"},
	{Name: "Core", Color: "#06b6d4"},
	{Name: "Cardio", Color: "#ec4899"},
	{Name: "Other", Color: "#64748b"},
}

// MuscleGroupColor returns the catalog color for a muscle-group type,
// matched case-insensitively. Empty string when the type is unknown.
func MuscleGroupColor(typ string) string {
	for _, g := range MuscleGroups {
		if strings.EqualFold(g.Name, typ) {
			return g.Color
		}
	}
	return ""
}

// EqualName reports whether two exercise names refer to the same exercise.
// Names are compared case-insensitively everywhere in the system.
func EqualName(a, b string) bool {
	return strings.EqualFold(a, b)
}
