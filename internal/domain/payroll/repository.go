package payroll

import "context"

type PayrollRepository interface {
	// CreatePayroll inserts the per-period aggregate row. A unique
	// violation on attendance_period_id comes back as ErrAlreadyProcessed.
	CreatePayroll(ctx context.Context, p Payroll) (Payroll, error)
	GetPayrollByPeriod(ctx context.Context, periodID string) (Payroll, error)
	CreatePayslip(ctx context.Context, slip Payslip) (Payslip, error)
	GetPayslipByUserPeriod(ctx context.Context, userID, periodID string) (Payslip, error)
	ListPayslipsByPayroll(ctx context.Context, payrollID string) ([]Payslip, error)
}
