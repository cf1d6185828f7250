package reimbursement

import (
	"context"
	"fmt"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/reimbursement"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type ReimbursementServiceImpl struct {
	db                *database.DB
	reimbursementRepo reimbursement.ReimbursementRepository
	periodRepo        period.PeriodRepository
	recorder          audit.Recorder
}

func NewReimbursementService(
	db *database.DB,
	reimbursementRepo reimbursement.ReimbursementRepository,
	periodRepo period.PeriodRepository,
	recorder audit.Recorder,
) reimbursement.ReimbursementService {
	return &ReimbursementServiceImpl{
		db:                db,
		reimbursementRepo: reimbursementRepo,
		periodRepo:        periodRepo,
		recorder:          recorder,
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

func (s *ReimbursementServiceImpl) SubmitReimbursement(ctx context.Context, req reimbursement.SubmitReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
	if err := req.Validate(); err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	activePeriod, err := s.periodRepo.FindActive(ctx)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}
	if activePeriod.PayrollProcessed {
		return reimbursement.ReimbursementResponse{}, period.ErrPeriodProcessed
	}

	created, err := s.reimbursementRepo.Insert(ctx, reimbursement.Reimbursement{
		UserID:             userID,
		AttendancePeriodID: activePeriod.ID,
		Amount:             req.Amount,
		Description:        req.Description,
		Status:             reimbursement.StatusPending,
	})
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventReimbursementSubmitted,
		ActorID:  userID,
		EntityID: created.ID,
		Details: map[string]interface{}{
			"amount":               created.Amount.String(),
			"attendance_period_id": created.AttendancePeriodID,
		},
	})

	return mapToResponse(created), nil
}

// UpdateStatus decides a pending reimbursement. Only reachable by admins
// (enforced at the routing layer), and only while the owning period has not
// been processed.
func (s *ReimbursementServiceImpl) UpdateStatus(ctx context.Context, req reimbursement.UpdateStatusRequest) (reimbursement.ReimbursementResponse, error) {
	if err := req.Validate(); err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	adminID, err := getClaimsFromContext(ctx)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	existing, err := s.reimbursementRepo.GetByID(ctx, req.ID)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}
	if existing.Status != reimbursement.StatusPending {
		return reimbursement.ReimbursementResponse{}, reimbursement.ErrAlreadyDecided
	}

	owningPeriod, err := s.periodRepo.GetByID(ctx, existing.AttendancePeriodID)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}
	if owningPeriod.PayrollProcessed {
		return reimbursement.ReimbursementResponse{}, period.ErrPeriodProcessed
	}

	updated, err := s.reimbursementRepo.UpdateStatus(ctx, req.ID, reimbursement.Status(req.Status), adminID)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventReimbursementDecided,
		ActorID:  adminID,
		EntityID: updated.ID,
		Details: map[string]interface{}{
			"status": string(updated.Status),
			"amount": updated.Amount.String(),
		},
	})

	return mapToResponse(updated), nil
}

func (s *ReimbursementServiceImpl) ListMyReimbursements(ctx context.Context) ([]reimbursement.ReimbursementResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	activePeriod, err := s.periodRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.reimbursementRepo.ListByUserPeriod(ctx, userID, activePeriod.ID)
	if err != nil {
		return nil, err
	}

	result := make([]reimbursement.ReimbursementResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}

	return result, nil
}

func mapToResponse(r reimbursement.Reimbursement) reimbursement.ReimbursementResponse {
	return reimbursement.ReimbursementResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		AttendancePeriodID: r.AttendancePeriodID,
		Amount:             r.Amount,
		Description:        r.Description,
		Status:             string(r.Status),
		DecidedBy:          r.DecidedBy,
		CreatedAt:          r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
