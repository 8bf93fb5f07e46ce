package accounting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	"github.com/tallyhq/tally_pro_app/internal/utils/accounting"
)

func ts(t *testing.T, iso string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, iso)
	require.NoError(t, err)
	return parsed
}

func TestTrafficByDaySingleClosedShift(t *testing.T) {
	out := ts(t, "2024-02-01T17:00:00Z")
	shifts := []domain.Shift{
		{ClockIn: ts(t, "2024-02-01T09:00:00Z"), ClockOut: &out},
	}

	rows := accounting.TrafficByDay(shifts)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-02-01", rows[0].Day)
	assert.Equal(t, 1, rows[0].ShiftCount)
	assert.InDelta(t, 8.0, rows[0].Hours, 1e-9)
}

func TestTrafficByDayOpenShiftCountsButAddsNoHours(t *testing.T) {
	out := ts(t, "2024-02-01T13:30:00Z")
	shifts := []domain.Shift{
		{ClockIn: ts(t, "2024-02-01T09:00:00Z"), ClockOut: &out},
		{ClockIn: ts(t, "2024-02-01T14:00:00Z")}, // still open
		{ClockIn: ts(t, "2024-02-02T08:00:00Z")}, // still open
	}

	rows := accounting.TrafficByDay(shifts)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-02-01", rows[0].Day)
	assert.Equal(t, 2, rows[0].ShiftCount)
	assert.InDelta(t, 4.5, rows[0].Hours, 1e-9)

	assert.Equal(t, "2024-02-02", rows[1].Day)
	assert.Equal(t, 1, rows[1].ShiftCount)
	assert.InDelta(t, 0.0, rows[1].Hours, 1e-9)
}

func TestTrafficByDayOrderedAscending(t *testing.T) {
	shifts := []domain.Shift{
		{ClockIn: ts(t, "2024-02-03T09:00:00Z")},
		{ClockIn: ts(t, "2024-02-01T09:00:00Z")},
		{ClockIn: ts(t, "2024-02-02T09:00:00Z")},
	}
	rows := accounting.TrafficByDay(shifts)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-02-01", rows[0].Day)
	assert.Equal(t, "2024-02-02", rows[1].Day)
	assert.Equal(t, "2024-02-03", rows[2].Day)
}

func TestTrafficByDayEmpty(t *testing.T) {
	assert.Empty(t, accounting.TrafficByDay(nil))
}
