package overtime

import (
	"context"
	"fmt"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/overtime"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type OvertimeServiceImpl struct {
	db           *database.DB
	overtimeRepo overtime.OvertimeRepository
	periodRepo   period.PeriodRepository
	recorder     audit.Recorder
}

func NewOvertimeService(
	db *database.DB,
	overtimeRepo overtime.OvertimeRepository,
	periodRepo period.PeriodRepository,
	recorder audit.Recorder,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		db:           db,
		overtimeRepo: overtimeRepo,
		periodRepo:   periodRepo,
		recorder:     recorder,
	}
}

func (s *OvertimeServiceImpl) SubmitOvertime(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return overtime.OvertimeResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	activePeriod, err := s.periodRepo.FindActive(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if activePeriod.PayrollProcessed {
		return overtime.OvertimeResponse{}, period.ErrPeriodProcessed
	}

	date := req.ParsedDate()
	if !activePeriod.Contains(date) {
		return overtime.OvertimeResponse{}, period.ErrDateOutsidePeriod
	}

	exists, err := s.overtimeRepo.ExistsForDate(ctx, userID, date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to check existing overtime: %w", err)
	}
	if exists {
		return overtime.OvertimeResponse{}, overtime.ErrAlreadySubmitted
	}

	created, err := s.overtimeRepo.Insert(ctx, overtime.OvertimeRecord{
		UserID:             userID,
		AttendancePeriodID: activePeriod.ID,
		OvertimeDate:       date,
		HoursWorked:        req.HoursWorked,
		Description:        req.Description,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventOvertimeSubmitted,
		ActorID:  userID,
		EntityID: created.ID,
		Details: map[string]interface{}{
			"overtime_date":        created.OvertimeDate.Format("2006-01-02"),
			"hours_worked":         created.HoursWorked.String(),
			"attendance_period_id": created.AttendancePeriodID,
		},
	})

	return mapToResponse(created), nil
}

func (s *OvertimeServiceImpl) ListMyOvertime(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	activePeriod, err := s.periodRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.overtimeRepo.ListByUserPeriod(ctx, userID, activePeriod.ID)
	if err != nil {
		return nil, err
	}

	result := make([]overtime.OvertimeResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}

	return result, nil
}

func mapToResponse(r overtime.OvertimeRecord) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		AttendancePeriodID: r.AttendancePeriodID,
		OvertimeDate:       r.OvertimeDate.Format("2006-01-02"),
		HoursWorked:        r.HoursWorked,
		Description:        r.Description,
		CreatedAt:          r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
