package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDays_DropsWrongShapes(t *testing.T) {
	raw := `[
		{"id":"ok","date":"2025-06-10T00:00:00Z","sessions":[]},
		{"id":123,"date":"2025-06-11T00:00:00Z","sessions":[]},
		{"id":"no-date","sessions":[]},
		{"id":"bad-sessions","date":"2025-06-12T00:00:00Z","sessions":{}},
		"not an object"
	]`

	days, dropped, ok := decodeDays(raw)
	require.True(t, ok)
	assert.Equal(t, 4, dropped)
	require.Len(t, days, 1)
	assert.Equal(t, "ok", days[0].ID)
}

func TestDecodeDays_AcceptsUnknownNestedShapes(t *testing.T) {
	// Only the top-level shape is checked; odd session contents pass.
	raw := `[{"id":"d1","date":"2025-06-10T00:00:00Z","sessions":[{"id":"s1","name":"Push","exercises":[]},{}]}]`

	days, dropped, ok := decodeDays(raw)
	require.True(t, ok)
	assert.Zero(t, dropped)
	require.Len(t, days, 1)
	assert.Len(t, days[0].Sessions, 2)
}

func TestDecodeDays_NonArray(t *testing.T) {
	_, _, ok := decodeDays(`{"days":[]}`)
	assert.False(t, ok)

	_, _, ok = decodeDays(`garbage`)
	assert.False(t, ok)
}

func TestDecodeExercises(t *testing.T) {
	raw := `[
		{"name":"Bench Press","createdAt":"2025-06-10T00:00:00Z"},
		{"name":42},
		{"color":"#ff0000"}
	]`

	exercises, dropped, ok := decodeExercises(raw)
	require.True(t, ok)
	assert.Equal(t, 2, dropped)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Bench Press", exercises[0].Name)
}

func TestDecodeTemplates(t *testing.T) {
	raw := `[
		{"id":"t1","name":"Push Day","exercises":[]},
		{"id":"t2","name":"Missing exercises"},
		{"id":"t3","exercises":[]}
	]`

	templates, dropped, ok := decodeTemplates(raw)
	require.True(t, ok)
	assert.Equal(t, 2, dropped)
	require.Len(t, templates, 1)
	assert.Equal(t, "Push Day", templates[0].Name)
}
