package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusProcessing PayrollStatus = "processing"
	PayrollStatusCompleted  PayrollStatus = "completed"
	PayrollStatusFailed     PayrollStatus = "failed"
)

// Payroll is the per-period aggregate of one processing run. The unique
// constraint on AttendancePeriodID is the exactly-once gate: a concurrent
// second run loses the insert and surfaces ErrAlreadyProcessed.
type Payroll struct {
	ID                 string
	AttendancePeriodID string
	TotalEmployees     int
	TotalAmount        decimal.Decimal
	Status             PayrollStatus
	ProcessedBy        string
	ProcessedAt        time.Time
	CreatedAt          time.Time
}

// Payslip is the immutable per-employee snapshot of what was paid and why.
// Once written it is never recalculated.
type Payslip struct {
	ID                  string
	UserID              string
	PayrollID           string
	AttendancePeriodID  string
	BaseSalary          decimal.Decimal
	AttendanceDays      int
	TotalWorkingDays    int
	ProratedSalary      decimal.Decimal
	OvertimeHours       decimal.Decimal
	OvertimeRate        decimal.Decimal
	OvertimeAmount      decimal.Decimal
	TotalReimbursements decimal.Decimal
	GrossPay            decimal.Decimal
	Deductions          decimal.Decimal
	NetPay              decimal.Decimal
	CreatedAt           time.Time

	// Joined fields
	Username *string
	FullName *string
}
