package period

import (
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be after start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed period range. Call only after Validate.
func (r *CreatePeriodRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type PeriodResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	IsActive         bool   `json:"is_active"`
	PayrollProcessed bool   `json:"payroll_processed"`
	TotalWorkingDays int    `json:"total_working_days"`
	CreatedAt        string `json:"created_at"`
}
