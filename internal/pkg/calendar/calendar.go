// Package calendar is the single source of truth for working-day math.
// Period validation, attendance submission checks and payroll proration must
// all go through it so they can never disagree on what counts as a workday.
package calendar

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDays counts the Monday-Friday dates in the inclusive range
// [start, end]. An inverted range yields 0.
func WorkingDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
