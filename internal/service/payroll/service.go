package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/attendance"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/overtime"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/payroll"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/reimbursement"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/user"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/calendar"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db                *database.DB
	payrollRepo       payroll.PayrollRepository
	periodRepo        period.PeriodRepository
	userRepo          user.UserRepository
	attendanceRepo    attendance.AttendanceRepository
	overtimeRepo      overtime.OvertimeRepository
	reimbursementRepo reimbursement.ReimbursementRepository
	calculator        *PayslipCalculator
	recorder          audit.Recorder
	// runTx wraps the processing run in a database transaction; swapped
	// for a passthrough in tests that use in-memory repositories.
	runTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	periodRepo period.PeriodRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	reimbursementRepo reimbursement.ReimbursementRepository,
	recorder audit.Recorder,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		payrollRepo:       payrollRepo,
		periodRepo:        periodRepo,
		userRepo:          userRepo,
		attendanceRepo:    attendanceRepo,
		overtimeRepo:      overtimeRepo,
		reimbursementRepo: reimbursementRepo,
		calculator:        NewPayslipCalculator(),
		recorder:          recorder,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Helper to get the acting user id from JWT context
func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// ProcessPayroll finalizes a period: one payroll row, one payslip per active
// employee, and the period marked processed, all inside a single transaction.
// Any failure rolls the whole run back so the period stays resubmittable.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	adminID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventPayrollStarted,
		ActorID:  adminID,
		EntityID: req.AttendancePeriodID,
	})

	var result payroll.Payroll
	err = s.runTx(ctx, func(txCtx context.Context) error {
		targetPeriod, err := s.periodRepo.GetByID(txCtx, req.AttendancePeriodID)
		if err != nil {
			return err
		}

		// Authoritative exactly-once check. The unique constraint on
		// payroll.attendance_period_id turns a racing second caller into
		// the same conflict error.
		_, err = s.payrollRepo.GetPayrollByPeriod(txCtx, targetPeriod.ID)
		if err == nil {
			return payroll.ErrAlreadyProcessed
		}
		if !errors.Is(err, payroll.ErrPayrollNotFound) {
			return err
		}

		if !targetPeriod.IsActive {
			return payroll.ErrPeriodInactive
		}

		employees, err := s.userRepo.GetActiveEmployees(txCtx)
		if err != nil {
			return err
		}
		if len(employees) == 0 {
			return payroll.ErrNoEmployees
		}

		// Shared across all employees; the one call site for proration.
		totalWorkingDays := calendar.WorkingDays(targetPeriod.StartDate, targetPeriod.EndDate)

		slips := make([]payroll.Payslip, 0, len(employees))
		totalAmount := decimal.Zero
		for _, emp := range employees {
			breakdown, err := s.computeForEmployee(txCtx, emp, targetPeriod.ID, totalWorkingDays)
			if err != nil {
				return fmt.Errorf("failed to compute payslip for user %s: %w", emp.ID, err)
			}

			slips = append(slips, payroll.Payslip{
				UserID:              emp.ID,
				AttendancePeriodID:  targetPeriod.ID,
				BaseSalary:          breakdown.BaseSalary,
				AttendanceDays:      breakdown.AttendanceDays,
				TotalWorkingDays:    breakdown.TotalWorkingDays,
				ProratedSalary:      breakdown.ProratedSalary,
				OvertimeHours:       breakdown.OvertimeHours,
				OvertimeRate:        breakdown.OvertimeRate,
				OvertimeAmount:      breakdown.OvertimeAmount,
				TotalReimbursements: breakdown.TotalReimbursements,
				GrossPay:            breakdown.GrossPay,
				Deductions:          breakdown.Deductions,
				NetPay:              breakdown.NetPay,
			})
			totalAmount = totalAmount.Add(breakdown.NetPay)
		}

		created, err := s.payrollRepo.CreatePayroll(txCtx, payroll.Payroll{
			AttendancePeriodID: targetPeriod.ID,
			TotalEmployees:     len(employees),
			TotalAmount:        totalAmount,
			Status:             payroll.PayrollStatusCompleted,
			ProcessedBy:        adminID,
			ProcessedAt:        time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		for i := range slips {
			slips[i].PayrollID = created.ID
			if _, err := s.payrollRepo.CreatePayslip(txCtx, slips[i]); err != nil {
				return fmt.Errorf("failed to create payslip for user %s: %w", slips[i].UserID, err)
			}
		}

		if _, err := s.periodRepo.MarkProcessed(txCtx, targetPeriod.ID); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventPayrollCompleted,
		ActorID:  adminID,
		EntityID: result.ID,
		Details: map[string]interface{}{
			"attendance_period_id": result.AttendancePeriodID,
			"total_employees":      result.TotalEmployees,
			"total_amount":         result.TotalAmount.String(),
		},
	})

	return mapToPayrollResponse(result), nil
}

// computeForEmployee gathers one employee's period aggregates and runs the
// calculator. No cross-employee state is read.
func (s *PayrollServiceImpl) computeForEmployee(ctx context.Context, emp user.User, periodID string, totalWorkingDays int) (Breakdown, error) {
	attendanceDays, err := s.attendanceRepo.CountDays(ctx, emp.ID, periodID)
	if err != nil {
		return Breakdown{}, fmt.Errorf("failed to count attendance days: %w", err)
	}

	overtimeHours, err := s.overtimeRepo.SumHours(ctx, emp.ID, periodID)
	if err != nil {
		return Breakdown{}, fmt.Errorf("failed to sum overtime hours: %w", err)
	}

	approvedReimbursements, err := s.reimbursementRepo.SumApproved(ctx, emp.ID, periodID)
	if err != nil {
		return Breakdown{}, fmt.Errorf("failed to sum approved reimbursements: %w", err)
	}

	return s.calculator.Calculate(CalculationInput{
		BaseSalary:             emp.BaseSalary,
		AttendanceDays:         attendanceDays,
		TotalWorkingDays:       totalWorkingDays,
		OvertimeHours:          overtimeHours,
		ApprovedReimbursements: approvedReimbursements,
	})
}

func (s *PayrollServiceImpl) GetMyPayslip(ctx context.Context, periodID string) (payroll.PayslipResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip, err := s.payrollRepo.GetPayslipByUserPeriod(ctx, userID, periodID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(slip), nil
}

func (s *PayrollServiceImpl) GetPayrollSummary(ctx context.Context, periodID string) (payroll.PayrollSummaryResponse, error) {
	run, err := s.payrollRepo.GetPayrollByPeriod(ctx, periodID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	slips, err := s.payrollRepo.ListPayslipsByPayroll(ctx, run.ID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	items := make([]payroll.PayslipSummaryItem, 0, len(slips))
	for _, slip := range slips {
		item := payroll.PayslipSummaryItem{
			UserID: slip.UserID,
			NetPay: slip.NetPay,
		}
		if slip.Username != nil {
			item.Username = *slip.Username
		}
		if slip.FullName != nil {
			item.FullName = *slip.FullName
		}
		items = append(items, item)
	}

	return payroll.PayrollSummaryResponse{
		AttendancePeriodID: periodID,
		TotalEmployees:     run.TotalEmployees,
		TotalAmount:        run.TotalAmount,
		Items:              items,
	}, nil
}

func mapToPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:                 p.ID,
		AttendancePeriodID: p.AttendancePeriodID,
		TotalEmployees:     p.TotalEmployees,
		TotalAmount:        p.TotalAmount,
		Status:             string(p.Status),
		ProcessedAt:        p.ProcessedAt.Format(time.RFC3339),
	}
}

func mapToPayslipResponse(slip payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		ID:                  slip.ID,
		UserID:              slip.UserID,
		PayrollID:           slip.PayrollID,
		AttendancePeriodID:  slip.AttendancePeriodID,
		BaseSalary:          slip.BaseSalary,
		AttendanceDays:      slip.AttendanceDays,
		TotalWorkingDays:    slip.TotalWorkingDays,
		ProratedSalary:      slip.ProratedSalary,
		OvertimeHours:       slip.OvertimeHours,
		OvertimeRate:        slip.OvertimeRate,
		OvertimeAmount:      slip.OvertimeAmount,
		TotalReimbursements: slip.TotalReimbursements,
		GrossPay:            slip.GrossPay,
		Deductions:          slip.Deductions,
		NetPay:              slip.NetPay,
	}
}
