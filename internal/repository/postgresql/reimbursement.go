package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/reimbursement"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) reimbursement.ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

func (r *reimbursementRepository) Insert(ctx context.Context, rec reimbursement.Reimbursement) (reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reimbursements (id, user_id, attendance_period_id, amount, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, attendance_period_id, amount, description, status, decided_by, decided_at, created_at, updated_at
	`

	var created reimbursement.Reimbursement
	err := q.QueryRow(ctx, query,
		uuid.NewString(), rec.UserID, rec.AttendancePeriodID, rec.Amount, rec.Description, rec.Status,
	).Scan(
		&created.ID, &created.UserID, &created.AttendancePeriodID,
		&created.Amount, &created.Description, &created.Status,
		&created.DecidedBy, &created.DecidedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return reimbursement.Reimbursement{}, fmt.Errorf("failed to insert reimbursement: %w", err)
	}

	return created, nil
}

func (r *reimbursementRepository) GetByID(ctx context.Context, id string) (reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, attendance_period_id, amount, description, status, decided_by, decided_at, created_at, updated_at
		FROM reimbursements
		WHERE id = $1
	`

	var rec reimbursement.Reimbursement
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.AttendancePeriodID,
		&rec.Amount, &rec.Description, &rec.Status,
		&rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reimbursement.Reimbursement{}, reimbursement.ErrReimbursementNotFound
		}
		return reimbursement.Reimbursement{}, fmt.Errorf("failed to get reimbursement: %w", err)
	}

	return rec, nil
}

func (r *reimbursementRepository) UpdateStatus(ctx context.Context, id string, status reimbursement.Status, decidedBy string) (reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	// Guarding on the current status keeps the pending->decided transition
	// one-way even under concurrent admins.
	query := `
		UPDATE reimbursements
		SET status = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id, user_id, attendance_period_id, amount, description, status, decided_by, decided_at, created_at, updated_at
	`

	var rec reimbursement.Reimbursement
	err := q.QueryRow(ctx, query, id, status, decidedBy).Scan(
		&rec.ID, &rec.UserID, &rec.AttendancePeriodID,
		&rec.Amount, &rec.Description, &rec.Status,
		&rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reimbursement.Reimbursement{}, reimbursement.ErrAlreadyDecided
		}
		return reimbursement.Reimbursement{}, fmt.Errorf("failed to update reimbursement status: %w", err)
	}

	return rec, nil
}

func (r *reimbursementRepository) SumApproved(ctx context.Context, userID, periodID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM reimbursements
		WHERE user_id = $1 AND attendance_period_id = $2 AND status = 'approved'
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, userID, periodID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved reimbursements: %w", err)
	}

	return total, nil
}

func (r *reimbursementRepository) ListByUserPeriod(ctx context.Context, userID, periodID string) ([]reimbursement.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, attendance_period_id, amount, description, status, decided_by, decided_at, created_at, updated_at
		FROM reimbursements
		WHERE user_id = $1 AND attendance_period_id = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, userID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements: %w", err)
	}
	defer rows.Close()

	var records []reimbursement.Reimbursement
	for rows.Next() {
		var rec reimbursement.Reimbursement
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.AttendancePeriodID,
			&rec.Amount, &rec.Description, &rec.Status,
			&rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
