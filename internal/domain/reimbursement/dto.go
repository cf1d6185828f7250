package reimbursement

import (
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitReimbursementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *SubmitReimbursementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "reimbursement id is required",
		})
	}

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReimbursementResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	DecidedBy          *string         `json:"decided_by,omitempty"`
	CreatedAt          string          `json:"created_at"`
}
