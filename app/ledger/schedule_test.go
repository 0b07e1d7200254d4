package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScheduleWrapsCalendarYear(t *testing.T) {
	s, err := ComputeSchedule(9, 5, 900)
	require.NoError(t, err)
	assert.Equal(t, 9, s.TotalMonths)
	assert.Equal(t, 100.0, s.MonthlyAmount)
}

func TestComputeScheduleTotalMonthsAlwaysInRange(t *testing.T) {
	for start := 1; start <= 12; start++ {
		for end := 1; end <= 12; end++ {
			s, err := ComputeSchedule(start, end, 1200)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, s.TotalMonths, 1, "start=%d end=%d", start, end)
			assert.LessOrEqual(t, s.TotalMonths, 12, "start=%d end=%d", start, end)
		}
	}
}

func TestComputeScheduleMonthlySumWithinRoundingTolerance(t *testing.T) {
	cases := []struct {
		start, end int
		annual     float64
	}{
		{9, 5, 900},
		{9, 6, 1000},
		{1, 12, 999},
		{10, 3, 1250.50},
		{9, 5, 1},
	}
	for _, tc := range cases {
		s, err := ComputeSchedule(tc.start, tc.end, tc.annual)
		require.NoError(t, err)
		sum := s.MonthlyAmount * float64(s.TotalMonths)
		tolerance := float64(s.TotalMonths) * 0.5
		assert.InDelta(t, tc.annual, sum, tolerance,
			"start=%d end=%d annual=%v", tc.start, tc.end, tc.annual)
	}
}

func TestComputeScheduleRejectsInvalidMonths(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		field      string
	}{
		{"start too low", 0, 5, "start_month"},
		{"start too high", 13, 5, "start_month"},
		{"end too low", 9, 0, "end_month"},
		{"end too high", 9, 13, "end_month"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeSchedule(tc.start, tc.end, 900)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestComputeScheduleRejectsNegativeAmount(t *testing.T) {
	_, err := ComputeSchedule(9, 5, -1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "annual_amount", verr.Field)
}

func TestComputeScheduleZeroAmount(t *testing.T) {
	s, err := ComputeSchedule(9, 5, 0)
	require.NoError(t, err)
	assert.Zero(t, s.MonthlyAmount)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Septembre", MonthName(9))
	assert.Equal(t, "Mai", MonthName(5))
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
}
