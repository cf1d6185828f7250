package payroll

import (
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// workHoursPerDay is the standard working day length used to derive the
// hourly rate from a prorated salary.
var workHoursPerDay = decimal.NewFromInt(8)

// overtimeMultiplier is a fixed business rule: overtime is always paid at
// exactly double the prorated hourly rate.
var overtimeMultiplier = decimal.NewFromInt(2)

// CalculationInput carries the per-employee figures the payroll processor
// aggregates before computing a payslip.
type CalculationInput struct {
	BaseSalary             decimal.Decimal
	AttendanceDays         int
	TotalWorkingDays       int
	OvertimeHours          decimal.Decimal
	ApprovedReimbursements decimal.Decimal
}

// Breakdown is the computed pay structure persisted into a payslip.
type Breakdown struct {
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
}

type PayslipCalculator struct{}

func NewPayslipCalculator() *PayslipCalculator {
	return &PayslipCalculator{}
}

// Calculate turns attendance, overtime and reimbursement figures into a pay
// breakdown. All arithmetic is decimal; monetary results are rounded
// half-even to 2 decimal places.
func (c *PayslipCalculator) Calculate(in CalculationInput) (Breakdown, error) {
	if in.TotalWorkingDays <= 0 {
		return Breakdown{}, payroll.ErrInvalidWorkingDays
	}
	if in.BaseSalary.IsNegative() {
		return Breakdown{}, payroll.ErrInvalidSalary
	}
	if in.AttendanceDays < 0 {
		return Breakdown{}, payroll.ErrInvalidAttendance
	}

	// Attendance cannot be credited above 100%.
	attendanceDays := in.AttendanceDays
	if attendanceDays > in.TotalWorkingDays {
		attendanceDays = in.TotalWorkingDays
	}

	totalWorkingDays := decimal.NewFromInt(int64(in.TotalWorkingDays))
	attendanceRate := decimal.NewFromInt(int64(attendanceDays)).Div(totalWorkingDays)

	proratedSalary := in.BaseSalary.Mul(attendanceRate).RoundBank(2)

	hourlyRate := proratedSalary.Div(totalWorkingDays.Mul(workHoursPerDay))
	overtimeRate := hourlyRate.Mul(overtimeMultiplier).RoundBank(2)
	overtimeAmount := in.OvertimeHours.Mul(overtimeRate).RoundBank(2)

	grossPay := proratedSalary.Add(overtimeAmount)

	// Reserved for future use; always zero in this system.
	deductions := decimal.Zero

	netPay := grossPay.Add(in.ApprovedReimbursements).Sub(deductions).RoundBank(2)

	return Breakdown{
		BaseSalary:          in.BaseSalary,
		AttendanceDays:      in.AttendanceDays,
		TotalWorkingDays:    in.TotalWorkingDays,
		ProratedSalary:      proratedSalary,
		OvertimeHours:       in.OvertimeHours,
		OvertimeRate:        overtimeRate,
		OvertimeAmount:      overtimeAmount,
		TotalReimbursements: in.ApprovedReimbursements,
		GrossPay:            grossPay,
		Deductions:          deductions,
		NetPay:              netPay,
	}, nil
}
