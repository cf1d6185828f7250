package reimbursement

import "context"

type ReimbursementService interface {
	SubmitReimbursement(ctx context.Context, req SubmitReimbursementRequest) (ReimbursementResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (ReimbursementResponse, error)
	ListMyReimbursements(ctx context.Context) ([]ReimbursementResponse, error)
}
