package period

import "errors"

var (
	ErrPeriodNotFound     = errors.New("attendance period not found")
	ErrActivePeriodExists = errors.New("an active attendance period already exists")
	ErrPeriodOverlap      = errors.New("attendance period overlaps an existing period")
	ErrNoActivePeriod     = errors.New("no active attendance period")
	ErrPeriodProcessed    = errors.New("attendance period has already been processed")
	ErrDateOutsidePeriod  = errors.New("date falls outside the active attendance period")
)
