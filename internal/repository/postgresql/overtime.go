package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/overtime"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

func (r *overtimeRepository) Insert(ctx context.Context, record overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (id, user_id, attendance_period_id, overtime_date, hours_worked, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, attendance_period_id, overtime_date, hours_worked, description, created_at
	`

	var created overtime.OvertimeRecord
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.UserID, record.AttendancePeriodID,
		record.OvertimeDate, record.HoursWorked, record.Description,
	).Scan(
		&created.ID, &created.UserID, &created.AttendancePeriodID,
		&created.OvertimeDate, &created.HoursWorked, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_overtime_user_date") {
			return overtime.OvertimeRecord{}, overtime.ErrAlreadySubmitted
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to insert overtime record: %w", err)
	}

	return created, nil
}

func (r *overtimeRepository) ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM overtime_records
			WHERE user_id = $1 AND overtime_date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overtime existence: %w", err)
	}

	return exists, nil
}

func (r *overtimeRepository) SumHours(ctx context.Context, userID, periodID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_worked), 0)
		FROM overtime_records
		WHERE user_id = $1 AND attendance_period_id = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, userID, periodID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum overtime hours: %w", err)
	}

	return total, nil
}

func (r *overtimeRepository) ListByUserPeriod(ctx context.Context, userID, periodID string) ([]overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, attendance_period_id, overtime_date, hours_worked, description, created_at
		FROM overtime_records
		WHERE user_id = $1 AND attendance_period_id = $2
		ORDER BY overtime_date
	`

	rows, err := q.Query(ctx, query, userID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.OvertimeRecord
	for rows.Next() {
		var rec overtime.OvertimeRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.AttendancePeriodID,
			&rec.OvertimeDate, &rec.HoursWorked, &rec.Description, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
