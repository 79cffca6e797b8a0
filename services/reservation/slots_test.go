package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kst(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, seoulLocation())
}

func TestHolidayHasNoSlots(t *testing.T) {
	avail, err := availableSlots("2025-01-01", kst(2024, time.December, 1, 9, 0))
	require.NoError(t, err)

	assert.True(t, avail.Disabled)
	assert.Empty(t, avail.Times)
	assert.Equal(t, disabledDateReason, avail.Reason)
}

func TestWeekendIsDisabled(t *testing.T) {
	now := kst(2025, time.January, 1, 9, 0)

	saturday, err := availableSlots("2025-01-04", now)
	require.NoError(t, err)
	assert.True(t, saturday.Disabled)

	sunday, err := availableSlots("2025-01-05", now)
	require.NoError(t, err)
	assert.True(t, sunday.Disabled)
}

func TestDatesOutsideWindowAreDisabled(t *testing.T) {
	now := kst(2024, time.June, 1, 9, 0)

	before, err := availableSlots("2024-12-31", now)
	require.NoError(t, err)
	assert.True(t, before.Disabled)

	after, err := availableSlots("2026-01-01", now)
	require.NoError(t, err)
	assert.True(t, after.Disabled)
}

func TestFutureWeekdayListsAllSlots(t *testing.T) {
	// 2025-03-05 is a Wednesday and not a holiday.
	avail, err := availableSlots("2025-03-05", kst(2025, time.March, 4, 9, 0))
	require.NoError(t, err)

	assert.False(t, avail.Disabled)
	assert.Equal(t, AvailableTimes, avail.Times)
}

func TestSameDayPastSlotsAreFiltered(t *testing.T) {
	avail, err := availableSlots("2025-03-05", kst(2025, time.March, 5, 14, 30))
	require.NoError(t, err)

	assert.False(t, avail.Disabled)
	assert.Equal(t, []string{"15:00", "16:00", "17:00"}, avail.Times)
}

func TestSlotEqualToNowIsExcluded(t *testing.T) {
	avail, err := availableSlots("2025-03-05", kst(2025, time.March, 5, 15, 0))
	require.NoError(t, err)

	assert.NotContains(t, avail.Times, "15:00")
	assert.Contains(t, avail.Times, "16:00")
}

func TestMalformedDateIsAnError(t *testing.T) {
	_, err := availableSlots("05-03-2025", kst(2025, time.March, 1, 9, 0))
	assert.Error(t, err)
}

func TestNoonIsNeverBookable(t *testing.T) {
	assert.NotContains(t, AvailableTimes, "12:00")
}
