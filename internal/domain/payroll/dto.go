package payroll

import (
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	AttendancePeriodID string `json:"attendance_period_id"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendancePeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_period_id",
			Message: "attendance_period_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID                 string          `json:"id"`
	AttendancePeriodID string          `json:"attendance_period_id"`
	TotalEmployees     int             `json:"total_employees"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Status             string          `json:"status"`
	ProcessedAt        string          `json:"processed_at"`
}

type PayslipResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	PayrollID           string          `json:"payroll_id"`
	AttendancePeriodID  string          `json:"attendance_period_id"`
	BaseSalary          decimal.Decimal `json:"base_salary"`
	AttendanceDays      int             `json:"attendance_days"`
	TotalWorkingDays    int             `json:"total_working_days"`
	ProratedSalary      decimal.Decimal `json:"prorated_salary"`
	OvertimeHours       decimal.Decimal `json:"overtime_hours"`
	OvertimeRate        decimal.Decimal `json:"overtime_rate"`
	OvertimeAmount      decimal.Decimal `json:"overtime_amount"`
	TotalReimbursements decimal.Decimal `json:"total_reimbursements"`
	GrossPay            decimal.Decimal `json:"gross_pay"`
	Deductions          decimal.Decimal `json:"deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`
}

type PayslipSummaryItem struct {
	UserID   string          `json:"user_id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	NetPay   decimal.Decimal `json:"net_pay"`
}

type PayrollSummaryResponse struct {
	AttendancePeriodID string               `json:"attendance_period_id"`
	TotalEmployees     int                  `json:"total_employees"`
	TotalAmount        decimal.Decimal      `json:"total_amount"`
	Items              []PayslipSummaryItem `json:"items"`
}
