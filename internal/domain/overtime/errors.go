package overtime

import "errors"

var (
	ErrInvalidHours     = errors.New("overtime hours must be between 0.5 and 3.0")
	ErrAlreadySubmitted = errors.New("overtime has already been submitted for this date")
)
