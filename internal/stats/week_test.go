package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart_MondayAnchor(t *testing.T) {
	// Wednesday 2025-06-11 -> Monday 2025-06-09.
	wed := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	start := WeekStart(wed)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, "2025-06-09", start.Format("2006-01-02"))
	assert.Zero(t, start.Hour())
}

func TestWeekStart_MondayIsItsOwnStart(t *testing.T) {
	mon := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", WeekStart(mon).Format("2006-01-02"))
}

func TestWeekStart_SundayBelongsToPrecedingMonday(t *testing.T) {
	// Sunday 2025-06-15 belongs to the week started Monday 2025-06-09.
	sun := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", WeekStart(sun).Format("2006-01-02"))
}

func TestWeekEnd(t *testing.T) {
	start := WeekStart(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	end := WeekEnd(start)
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, "2025-06-15", end.Format("2006-01-02"))
	assert.True(t, end.After(start))
}
