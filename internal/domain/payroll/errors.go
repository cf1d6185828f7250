package payroll

import "errors"

var (
	ErrAlreadyProcessed   = errors.New("payroll has already been processed for this period")
	ErrPeriodInactive     = errors.New("attendance period is not active")
	ErrNoEmployees        = errors.New("no active employees to process")
	ErrPayrollNotFound    = errors.New("payroll not found for this period")
	ErrPayslipNotFound    = errors.New("payslip not found")
	ErrInvalidWorkingDays = errors.New("total working days must be greater than zero")
	ErrInvalidSalary      = errors.New("base salary cannot be negative")
	ErrInvalidAttendance  = errors.New("attendance days cannot be negative")
)
