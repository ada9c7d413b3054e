package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"NAME", "COUNT"}, [][]string{
		{"Bench Press", "3"},
		{"Squat", "12"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Bench Press")
	assert.Contains(t, lines[3], "Squat")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderBox_IncludesTitleUppercased(t *testing.T) {
	out := RenderBox("Workout Days", "content")
	assert.Contains(t, out, "WORKOUT DAYS")
	assert.Contains(t, out, "content")
}
