package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indodjija/models"
)

func bookedN(date string, n int) []models.Reservation {
	slots := NewCatalog().AllDaySlots()
	var out []models.Reservation
	for i := 0; i < n; i++ {
		out = append(out, confirmedAt(models.PackageAdult, date, slots[i]))
	}
	return out
}

func TestDayStatus_Buckets(t *testing.T) {
	assert.Equal(t, models.OccupancyFree, DayStatus(testDate, nil, 6))
	assert.Equal(t, models.OccupancyPartial, DayStatus(testDate, bookedN(testDate, 3), 6))
	assert.Equal(t, models.OccupancyFull, DayStatus(testDate, bookedN(testDate, 6), 6))
}

func TestDayStatus_Idempotent(t *testing.T) {
	snapshot := bookedN(testDate, 2)
	assert.Equal(t, DayStatus(testDate, snapshot, 6), DayStatus(testDate, snapshot, 6))
}

func TestProjectMonth_PastDaysNotSelectable(t *testing.T) {
	today := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	confirmed := append(bookedN("2025-06-05", 1), bookedN("2025-06-20", 6)...)

	cal, err := ProjectMonth(2025, time.June, today, confirmed, 6)
	require.NoError(t, err)
	require.Len(t, cal.Days, 30)

	day5 := cal.Days[4]
	assert.Equal(t, "2025-06-05", day5.Date)
	assert.True(t, day5.Past)
	assert.False(t, day5.Selectable)
	assert.Equal(t, models.OccupancyPartial, day5.Status)

	day10 := cal.Days[9]
	assert.False(t, day10.Past)
	assert.True(t, day10.Selectable)

	day20 := cal.Days[19]
	assert.Equal(t, models.OccupancyFull, day20.Status)
	assert.False(t, day20.Selectable)
	assert.Equal(t, 6, day20.Booked)
}

func TestProjectMonth_RejectsBadMonth(t *testing.T) {
	_, err := ProjectMonth(2025, 13, testNow, nil, 6)
	assert.ErrorIs(t, err, ErrValidation)
}
