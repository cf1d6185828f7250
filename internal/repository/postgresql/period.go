package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) Create(ctx context.Context, p period.AttendancePeriod) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_periods (id, name, start_date, end_date, is_active, payroll_processed, created_by)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id, name, start_date, end_date, is_active, payroll_processed, created_by, created_at, updated_at
	`

	var created period.AttendancePeriod
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.Name, p.StartDate, p.EndDate, p.IsActive, p.CreatedBy,
	).Scan(
		&created.ID, &created.Name, &created.StartDate, &created.EndDate,
		&created.IsActive, &created.PayrollProcessed, &created.CreatedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		// Partial unique index on is_active: two concurrent creations
		// resolve to one winner and one conflict.
		if strings.Contains(err.Error(), "uq_attendance_periods_active") {
			return period.AttendancePeriod{}, period.ErrActivePeriodExists
		}
		return period.AttendancePeriod{}, fmt.Errorf("failed to create attendance period: %w", err)
	}

	return created, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_active, payroll_processed, created_by, created_at, updated_at
		FROM attendance_periods
		WHERE id = $1
	`

	var p period.AttendancePeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.PayrollProcessed, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.AttendancePeriod{}, period.ErrPeriodNotFound
		}
		return period.AttendancePeriod{}, fmt.Errorf("failed to get attendance period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) FindActive(ctx context.Context) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_active, payroll_processed, created_by, created_at, updated_at
		FROM attendance_periods
		WHERE is_active = true
	`

	var p period.AttendancePeriod
	err := q.QueryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.PayrollProcessed, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.AttendancePeriod{}, period.ErrNoActivePeriod
		}
		return period.AttendancePeriod{}, fmt.Errorf("failed to find active period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_periods
			WHERE start_date <= $2 AND end_date >= $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping periods: %w", err)
	}

	return exists, nil
}

func (r *periodRepository) MarkProcessed(ctx context.Context, id string) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_periods
		SET payroll_processed = true, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, start_date, end_date, is_active, payroll_processed, created_by, created_at, updated_at
	`

	var p period.AttendancePeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.PayrollProcessed, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.AttendancePeriod{}, period.ErrPeriodNotFound
		}
		return period.AttendancePeriod{}, fmt.Errorf("failed to mark period processed: %w", err)
	}

	return p, nil
}

func (r *periodRepository) Deactivate(ctx context.Context, id string) (period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_periods
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, start_date, end_date, is_active, payroll_processed, created_by, created_at, updated_at
	`

	var p period.AttendancePeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.PayrollProcessed, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.AttendancePeriod{}, period.ErrPeriodNotFound
		}
		return period.AttendancePeriod{}, fmt.Errorf("failed to deactivate period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) List(ctx context.Context) ([]period.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_active, payroll_processed, created_by, created_at, updated_at
		FROM attendance_periods
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance periods: %w", err)
	}
	defer rows.Close()

	var periods []period.AttendancePeriod
	for rows.Next() {
		var p period.AttendancePeriod
		if err := rows.Scan(
			&p.ID, &p.Name, &p.StartDate, &p.EndDate,
			&p.IsActive, &p.PayrollProcessed, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}
