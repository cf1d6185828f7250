package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/payroll"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) CreatePayroll(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (id, attendance_period_id, total_employees, total_amount, status, processed_by, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, attendance_period_id, total_employees, total_amount, status, processed_by, processed_at, created_at
	`

	var created payroll.Payroll
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.AttendancePeriodID, p.TotalEmployees,
		p.TotalAmount, p.Status, p.ProcessedBy, p.ProcessedAt,
	).Scan(
		&created.ID, &created.AttendancePeriodID, &created.TotalEmployees,
		&created.TotalAmount, &created.Status, &created.ProcessedBy,
		&created.ProcessedAt, &created.CreatedAt,
	)
	if err != nil {
		// Unique constraint on attendance_period_id is the exactly-once
		// gate for the whole payroll run.
		if strings.Contains(err.Error(), "uq_payrolls_period") {
			return payroll.Payroll{}, payroll.ErrAlreadyProcessed
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPayrollByPeriod(ctx context.Context, periodID string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, total_employees, total_amount, status, processed_by, processed_at, created_at
		FROM payrolls
		WHERE attendance_period_id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, periodID).Scan(
		&p.ID, &p.AttendancePeriodID, &p.TotalEmployees,
		&p.TotalAmount, &p.Status, &p.ProcessedBy, &p.ProcessedAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) CreatePayslip(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, user_id, payroll_id, attendance_period_id,
			base_salary, attendance_days, total_working_days, prorated_salary,
			overtime_hours, overtime_rate, overtime_amount,
			total_reimbursements, gross_pay, deductions, net_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, user_id, payroll_id, attendance_period_id,
			base_salary, attendance_days, total_working_days, prorated_salary,
			overtime_hours, overtime_rate, overtime_amount,
			total_reimbursements, gross_pay, deductions, net_pay, created_at
	`

	var created payroll.Payslip
	err := q.QueryRow(ctx, query,
		uuid.NewString(), slip.UserID, slip.PayrollID, slip.AttendancePeriodID,
		slip.BaseSalary, slip.AttendanceDays, slip.TotalWorkingDays, slip.ProratedSalary,
		slip.OvertimeHours, slip.OvertimeRate, slip.OvertimeAmount,
		slip.TotalReimbursements, slip.GrossPay, slip.Deductions, slip.NetPay,
	).Scan(
		&created.ID, &created.UserID, &created.PayrollID, &created.AttendancePeriodID,
		&created.BaseSalary, &created.AttendanceDays, &created.TotalWorkingDays, &created.ProratedSalary,
		&created.OvertimeHours, &created.OvertimeRate, &created.OvertimeAmount,
		&created.TotalReimbursements, &created.GrossPay, &created.Deductions, &created.NetPay,
		&created.CreatedAt,
	)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPayslipByUserPeriod(ctx context.Context, userID, periodID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, payroll_id, attendance_period_id,
			base_salary, attendance_days, total_working_days, prorated_salary,
			overtime_hours, overtime_rate, overtime_amount,
			total_reimbursements, gross_pay, deductions, net_pay, created_at
		FROM payslips
		WHERE user_id = $1 AND attendance_period_id = $2
	`

	var slip payroll.Payslip
	err := q.QueryRow(ctx, query, userID, periodID).Scan(
		&slip.ID, &slip.UserID, &slip.PayrollID, &slip.AttendancePeriodID,
		&slip.BaseSalary, &slip.AttendanceDays, &slip.TotalWorkingDays, &slip.ProratedSalary,
		&slip.OvertimeHours, &slip.OvertimeRate, &slip.OvertimeAmount,
		&slip.TotalReimbursements, &slip.GrossPay, &slip.Deductions, &slip.NetPay,
		&slip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}

func (r *payrollRepository) ListPayslipsByPayroll(ctx context.Context, payrollID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.payroll_id, s.attendance_period_id,
			s.base_salary, s.attendance_days, s.total_working_days, s.prorated_salary,
			s.overtime_hours, s.overtime_rate, s.overtime_amount,
			s.total_reimbursements, s.gross_pay, s.deductions, s.net_pay, s.created_at,
			u.username, u.full_name
		FROM payslips s
		JOIN users u ON u.id = s.user_id
		WHERE s.payroll_id = $1
		ORDER BY u.username
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		var slip payroll.Payslip
		if err := rows.Scan(
			&slip.ID, &slip.UserID, &slip.PayrollID, &slip.AttendancePeriodID,
			&slip.BaseSalary, &slip.AttendanceDays, &slip.TotalWorkingDays, &slip.ProratedSalary,
			&slip.OvertimeHours, &slip.OvertimeRate, &slip.OvertimeAmount,
			&slip.TotalReimbursements, &slip.GrossPay, &slip.Deductions, &slip.NetPay,
			&slip.CreatedAt,
			&slip.Username, &slip.FullName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}

	return slips, rows.Err()
}
