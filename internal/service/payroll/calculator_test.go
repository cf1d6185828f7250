package payroll

import (
	"testing"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayslipCalculator_Calculate_FullAttendance(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	got, err := calc.Calculate(CalculationInput{
		BaseSalary:             decimal.NewFromInt(5000000),
		AttendanceDays:         22,
		TotalWorkingDays:       22,
		OvertimeHours:          decimal.Zero,
		ApprovedReimbursements: decimal.Zero,
	})
	require.NoError(t, err)

	assert.True(t, got.ProratedSalary.Equal(decimal.NewFromInt(5000000)), "prorated = %s", got.ProratedSalary)
	assert.True(t, got.OvertimeAmount.IsZero())
	assert.True(t, got.GrossPay.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, got.Deductions.IsZero())
	assert.True(t, got.NetPay.Equal(decimal.NewFromInt(5000000)), "net = %s", got.NetPay)
}

func TestPayslipCalculator_Calculate_PartialAttendance(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	got, err := calc.Calculate(CalculationInput{
		BaseSalary:             decimal.NewFromInt(5000000),
		AttendanceDays:         18,
		TotalWorkingDays:       22,
		OvertimeHours:          decimal.Zero,
		ApprovedReimbursements: decimal.Zero,
	})
	require.NoError(t, err)

	// 5,000,000 * 18/22 = 4,090,909.0909... rounds to 4,090,909.09
	want := decimal.RequireFromString("4090909.09")
	assert.True(t, got.ProratedSalary.Equal(want), "prorated = %s", got.ProratedSalary)
	assert.True(t, got.NetPay.Equal(want), "net = %s", got.NetPay)
}

func TestPayslipCalculator_Calculate_Overtime(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	got, err := calc.Calculate(CalculationInput{
		BaseSalary:             decimal.NewFromInt(4000000),
		AttendanceDays:         20,
		TotalWorkingDays:       20,
		OvertimeHours:          decimal.NewFromInt(60),
		ApprovedReimbursements: decimal.Zero,
	})
	require.NoError(t, err)

	// hourly = 4,000,000 / 160 = 25,000; overtime rate doubles it
	assert.True(t, got.OvertimeRate.Equal(decimal.NewFromInt(50000)), "rate = %s", got.OvertimeRate)
	assert.True(t, got.OvertimeAmount.Equal(decimal.NewFromInt(3000000)), "amount = %s", got.OvertimeAmount)
	assert.True(t, got.GrossPay.Equal(decimal.NewFromInt(7000000)), "gross = %s", got.GrossPay)
	assert.True(t, got.NetPay.Equal(decimal.NewFromInt(7000000)), "net = %s", got.NetPay)
}

func TestPayslipCalculator_Calculate_Reimbursements(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	got, err := calc.Calculate(CalculationInput{
		BaseSalary:             decimal.NewFromInt(4000000),
		AttendanceDays:         20,
		TotalWorkingDays:       20,
		OvertimeHours:          decimal.Zero,
		ApprovedReimbursements: decimal.RequireFromString("150000.50"),
	})
	require.NoError(t, err)

	assert.True(t, got.TotalReimbursements.Equal(decimal.RequireFromString("150000.50")))
	assert.True(t, got.GrossPay.Equal(decimal.NewFromInt(4000000)))
	assert.True(t, got.NetPay.Equal(decimal.RequireFromString("4150000.50")), "net = %s", got.NetPay)
}

func TestPayslipCalculator_Calculate_ZeroAttendance(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	got, err := calc.Calculate(CalculationInput{
		BaseSalary:             decimal.NewFromInt(5000000),
		AttendanceDays:         0,
		TotalWorkingDays:       22,
		OvertimeHours:          decimal.NewFromInt(2),
		ApprovedReimbursements: decimal.Zero,
	})
	require.NoError(t, err)

	assert.True(t, got.ProratedSalary.IsZero())
	assert.True(t, got.OvertimeRate.IsZero())
	assert.True(t, got.OvertimeAmount.IsZero())
	assert.True(t, got.NetPay.IsZero())
}

func TestPayslipCalculator_Calculate_ClampsAttendanceAboveWorkingDays(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	got, err := calc.Calculate(CalculationInput{
		BaseSalary:             decimal.NewFromInt(5000000),
		AttendanceDays:         30,
		TotalWorkingDays:       22,
		OvertimeHours:          decimal.Zero,
		ApprovedReimbursements: decimal.Zero,
	})
	require.NoError(t, err)

	// Attendance above 100% never inflates pay.
	assert.True(t, got.ProratedSalary.Equal(decimal.NewFromInt(5000000)), "prorated = %s", got.ProratedSalary)
	assert.Equal(t, 30, got.AttendanceDays)
}

func TestPayslipCalculator_Calculate_ProrationMonotonic(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	prev := decimal.NewFromInt(-1)
	for days := 0; days <= 22; days++ {
		got, err := calc.Calculate(CalculationInput{
			BaseSalary:             decimal.NewFromInt(7333333),
			AttendanceDays:         days,
			TotalWorkingDays:       22,
			OvertimeHours:          decimal.Zero,
			ApprovedReimbursements: decimal.Zero,
		})
		require.NoError(t, err)
		assert.True(t, got.NetPay.GreaterThanOrEqual(prev),
			"net pay decreased at %d days: %s < %s", days, got.NetPay, prev)
		prev = got.NetPay
	}
}

func TestPayslipCalculator_Calculate_Deterministic(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	in := CalculationInput{
		BaseSalary:             decimal.RequireFromString("6178433.33"),
		AttendanceDays:         17,
		TotalWorkingDays:       21,
		OvertimeHours:          decimal.RequireFromString("12.5"),
		ApprovedReimbursements: decimal.RequireFromString("89250.75"),
	}

	first, err := calc.Calculate(in)
	require.NoError(t, err)
	second, err := calc.Calculate(in)
	require.NoError(t, err)

	assert.True(t, first.NetPay.Equal(second.NetPay))
	assert.True(t, first.OvertimeRate.Equal(second.OvertimeRate))
}

func TestPayslipCalculator_Calculate_InvalidInputs(t *testing.T) {
	t.Parallel()
	calc := NewPayslipCalculator()

	tests := []struct {
		name    string
		in      CalculationInput
		wantErr error
	}{
		{
			name: "zero working days",
			in: CalculationInput{
				BaseSalary:       decimal.NewFromInt(5000000),
				AttendanceDays:   10,
				TotalWorkingDays: 0,
			},
			wantErr: payroll.ErrInvalidWorkingDays,
		},
		{
			name: "negative working days",
			in: CalculationInput{
				BaseSalary:       decimal.NewFromInt(5000000),
				AttendanceDays:   10,
				TotalWorkingDays: -5,
			},
			wantErr: payroll.ErrInvalidWorkingDays,
		},
		{
			name: "negative salary",
			in: CalculationInput{
				BaseSalary:       decimal.NewFromInt(-1),
				AttendanceDays:   10,
				TotalWorkingDays: 22,
			},
			wantErr: payroll.ErrInvalidSalary,
		},
		{
			name: "negative attendance",
			in: CalculationInput{
				BaseSalary:       decimal.NewFromInt(5000000),
				AttendanceDays:   -1,
				TotalWorkingDays: 22,
			},
			wantErr: payroll.ErrInvalidAttendance,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
