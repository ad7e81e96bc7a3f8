package schedule

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name string
		s    domain.Schedule
		dom  *int
		dow  *int
		from time.Time
		want time.Time
	}{
		{name: "daily", s: domain.ScheduleDaily, from: date(2024, time.February, 28), want: date(2024, time.February, 29)},
		{name: "weekly no weekday", s: domain.ScheduleWeekly, from: date(2024, time.May, 1), want: date(2024, time.May, 8)},
		// 2024-05-01 is a Wednesday.
		{name: "weekly to friday", s: domain.ScheduleWeekly, dow: intPtr(5), from: date(2024, time.May, 1), want: date(2024, time.May, 3)},
		{name: "weekly same weekday skips a week", s: domain.ScheduleWeekly, dow: intPtr(3), from: date(2024, time.May, 1), want: date(2024, time.May, 8)},
		{name: "monthly keeps day", s: domain.ScheduleMonthly, from: date(2024, time.January, 15), want: date(2024, time.February, 15)},
		{name: "monthly clamps to short month", s: domain.ScheduleMonthly, dom: intPtr(31), from: date(2024, time.January, 31), want: date(2024, time.February, 29)},
		{name: "monthly rolls year", s: domain.ScheduleMonthly, dom: intPtr(5), from: date(2024, time.December, 5), want: date(2025, time.January, 5)},
		{name: "time of day is dropped", s: domain.ScheduleDaily, from: time.Date(2024, time.March, 3, 23, 59, 0, 0, time.UTC), want: date(2024, time.March, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDueDate(tt.s, tt.dom, tt.dow, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDueDate_Errors(t *testing.T) {
	_, err := NextDueDate("yearly", nil, nil, date(2024, time.January, 1))
	assert.Error(t, err)

	_, err = NextDueDate(domain.ScheduleWeekly, nil, intPtr(9), date(2024, time.January, 1))
	assert.Error(t, err)

	_, err = NextDueDate(domain.ScheduleMonthly, intPtr(0), nil, date(2024, time.January, 1))
	assert.Error(t, err)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 31, DaysIn(2023, time.December))
}
