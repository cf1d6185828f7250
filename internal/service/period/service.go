package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/calendar"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type PeriodServiceImpl struct {
	db         *database.DB
	periodRepo period.PeriodRepository
	recorder   audit.Recorder
}

func NewPeriodService(
	db *database.DB,
	periodRepo period.PeriodRepository,
	recorder audit.Recorder,
) period.PeriodService {
	return &PeriodServiceImpl{
		db:         db,
		periodRepo: periodRepo,
		recorder:   recorder,
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

func (s *PeriodServiceImpl) CreatePeriod(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	start, end := req.Dates()

	// Creation never implicitly deactivates another period: an existing
	// active period is a hard conflict.
	_, err = s.periodRepo.FindActive(ctx)
	if err == nil {
		return period.PeriodResponse{}, period.ErrActivePeriodExists
	}
	if !errors.Is(err, period.ErrNoActivePeriod) {
		return period.PeriodResponse{}, err
	}

	overlaps, err := s.periodRepo.ExistsOverlapping(ctx, start, end)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	if overlaps {
		return period.PeriodResponse{}, period.ErrPeriodOverlap
	}

	created, err := s.periodRepo.Create(ctx, period.AttendancePeriod{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		CreatedBy: userID,
	})
	if err != nil {
		return period.PeriodResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventPeriodCreated,
		ActorID:  userID,
		EntityID: created.ID,
		Details: map[string]interface{}{
			"name":       created.Name,
			"start_date": created.StartDate.Format("2006-01-02"),
			"end_date":   created.EndDate.Format("2006-01-02"),
		},
	})

	return mapToResponse(created), nil
}

func (s *PeriodServiceImpl) GetActivePeriod(ctx context.Context) (period.PeriodResponse, error) {
	active, err := s.periodRepo.FindActive(ctx)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return mapToResponse(active), nil
}

// DeactivatePeriod is the administrative correction path. It is not part of
// the payroll flow, which locks a period by marking it processed instead.
func (s *PeriodServiceImpl) DeactivatePeriod(ctx context.Context, id string) (period.PeriodResponse, error) {
	updated, err := s.periodRepo.Deactivate(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *PeriodServiceImpl) ListPeriods(ctx context.Context) ([]period.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToResponse(p))
	}

	return result, nil
}

func mapToResponse(p period.AttendancePeriod) period.PeriodResponse {
	return period.PeriodResponse{
		ID:               p.ID,
		Name:             p.Name,
		StartDate:        p.StartDate.Format("2006-01-02"),
		EndDate:          p.EndDate.Format("2006-01-02"),
		IsActive:         p.IsActive,
		PayrollProcessed: p.PayrollProcessed,
		TotalWorkingDays: calendar.WorkingDays(p.StartDate, p.EndDate),
		CreatedAt:        p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
