package attendance

import (
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/validator"
)

type SubmitAttendanceRequest struct {
	Date  string  `json:"date"`
	Notes *string `json:"notes,omitempty"`
}

func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the attendance date. Call only after Validate.
func (r *SubmitAttendanceRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	AttendancePeriodID string  `json:"attendance_period_id"`
	AttendanceDate     string  `json:"attendance_date"`
	Notes              *string `json:"notes,omitempty"`
	CreatedAt          string  `json:"created_at"`
}
