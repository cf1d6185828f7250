package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/attendance"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Insert(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, user_id, attendance_period_id, attendance_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, attendance_period_id, attendance_date, notes, created_at
	`

	var created attendance.AttendanceRecord
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.UserID, record.AttendancePeriodID, record.AttendanceDate, record.Notes,
	).Scan(
		&created.ID, &created.UserID, &created.AttendancePeriodID,
		&created.AttendanceDate, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_attendance_user_date") {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadySubmitted
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE user_id = $1 AND attendance_date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

func (r *attendanceRepository) CountDays(ctx context.Context, userID, periodID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT attendance_date)
		FROM attendance_records
		WHERE user_id = $1 AND attendance_period_id = $2
	`

	var count int
	if err := q.QueryRow(ctx, query, userID, periodID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance days: %w", err)
	}

	return count, nil
}

func (r *attendanceRepository) ListByUserPeriod(ctx context.Context, userID, periodID string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, attendance_period_id, attendance_date, notes, created_at
		FROM attendance_records
		WHERE user_id = $1 AND attendance_period_id = $2
		ORDER BY attendance_date
	`

	rows, err := q.Query(ctx, query, userID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.AttendancePeriodID,
			&rec.AttendanceDate, &rec.Notes, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
