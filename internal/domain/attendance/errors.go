package attendance

import "errors"

var (
	ErrWeekendNotAllowed  = errors.New("attendance cannot be submitted for a weekend date")
	ErrFutureDate         = errors.New("attendance cannot be submitted for a future date")
	ErrAlreadySubmitted   = errors.New("attendance has already been submitted for this date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
