package reimbursement

import (
	"context"

	"github.com/shopspring/decimal"
)

type ReimbursementRepository interface {
	Insert(ctx context.Context, r Reimbursement) (Reimbursement, error)
	GetByID(ctx context.Context, id string) (Reimbursement, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (Reimbursement, error)
	// SumApproved totals the user's approved reimbursements within the
	// period. Pending and rejected amounts are excluded.
	SumApproved(ctx context.Context, userID, periodID string) (decimal.Decimal, error)
	ListByUserPeriod(ctx context.Context, userID, periodID string) ([]Reimbursement, error)
}
