package payroll

import "context"

type PayrollService interface {
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error)
	GetMyPayslip(ctx context.Context, periodID string) (PayslipResponse, error)
	GetPayrollSummary(ctx context.Context, periodID string) (PayrollSummaryResponse, error)
}
