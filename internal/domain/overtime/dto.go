package overtime

import (
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitOvertimeRequest struct {
	Date        string          `json:"date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Description *string         `json:"description,omitempty"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.HoursWorked.LessThan(MinHours) || r.HoursWorked.GreaterThan(MaxHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must be between 0.5 and 3.0",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the overtime date. Call only after Validate.
func (r *SubmitOvertimeRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type OvertimeResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	OvertimeDate       string          `json:"overtime_date"`
	HoursWorked        decimal.Decimal `json:"hours_worked"`
	Description        *string         `json:"description,omitempty"`
	CreatedAt          string          `json:"created_at"`
}
