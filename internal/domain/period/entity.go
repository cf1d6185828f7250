package period

import "time"

// AttendancePeriod is the accounting window submissions are collected
// against. At most one period is active at any instant, and PayrollProcessed
// only ever moves from false to true.
type AttendancePeriod struct {
	ID               string
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	IsActive         bool
	PayrollProcessed bool
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Contains reports whether date falls within [StartDate, EndDate].
func (p *AttendancePeriod) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(p.StartDate.Year(), p.StartDate.Month(), p.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.EndDate.Year(), p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
