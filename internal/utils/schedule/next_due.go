package schedule

import (
	"fmt"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// NextDueDate returns the first due date strictly after from.
//
// Daily rules advance one day. Weekly rules advance to the next matching
// weekday (0 = Sunday) or by seven days when no weekday is set. Monthly rules
// move to the following month on dayOfMonth, clamped to the month's length,
// falling back to from's day when dayOfMonth is unset.
func NextDueDate(s domain.Schedule, dayOfMonth, dayOfWeek *int, from time.Time) (time.Time, error) {
	from = domain.DateOnly(from)

	switch s {
	case domain.ScheduleDaily:
		return from.AddDate(0, 0, 1), nil

	case domain.ScheduleWeekly:
		if dayOfWeek == nil {
			return from.AddDate(0, 0, 7), nil
		}
		if *dayOfWeek < 0 || *dayOfWeek > 6 {
			return time.Time{}, fmt.Errorf("day_of_week %d out of range", *dayOfWeek)
		}
		ahead := (*dayOfWeek - int(from.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return from.AddDate(0, 0, ahead), nil

	case domain.ScheduleMonthly:
		day := from.Day()
		if dayOfMonth != nil {
			if *dayOfMonth < 1 || *dayOfMonth > 31 {
				return time.Time{}, fmt.Errorf("day_of_month %d out of range", *dayOfMonth)
			}
			day = *dayOfMonth
		}
		y, m := from.Year(), from.Month()+1
		if m > time.December {
			m = time.January
			y++
		}
		if last := DaysIn(y, m); day > last {
			day = last
		}
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("unknown schedule %q", s)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
