package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/attendance"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/calendar"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	periodRepo     period.PeriodRepository
	recorder       audit.Recorder
	// now is swapped out in tests to pin "today"
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
	recorder audit.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
		recorder:       recorder,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) SubmitAttendance(ctx context.Context, req attendance.SubmitAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return attendance.AttendanceResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	// The active period is resolved once and passed explicitly through the
	// validation chain, never read again mid-call.
	activePeriod, err := s.periodRepo.FindActive(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := req.ParsedDate()
	if err := validateSubmission(&activePeriod, userID, date, s.now()); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.attendanceRepo.ExistsForDate(ctx, userID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadySubmitted
	}

	created, err := s.attendanceRepo.Insert(ctx, attendance.AttendanceRecord{
		UserID:             userID,
		AttendancePeriodID: activePeriod.ID,
		AttendanceDate:     date,
		Notes:              req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.recorder.Record(ctx, audit.Event{
		Type:     audit.EventAttendanceSubmitted,
		ActorID:  userID,
		EntityID: created.ID,
		Details: map[string]interface{}{
			"attendance_date":      created.AttendanceDate.Format("2006-01-02"),
			"attendance_period_id": created.AttendancePeriodID,
		},
	})

	return mapToResponse(created), nil
}

// validateSubmission runs the shared gate plus the attendance-specific rules,
// short-circuiting on the first failure.
func validateSubmission(p *period.AttendancePeriod, userID string, date time.Time, now time.Time) error {
	if p.PayrollProcessed {
		return period.ErrPeriodProcessed
	}
	if !p.Contains(date) {
		return period.ErrDateOutsidePeriod
	}
	if calendar.IsWeekend(date) {
		return attendance.ErrWeekendNotAllowed
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return attendance.ErrFutureDate
	}

	return nil
}

func (s *AttendanceServiceImpl) ListMyAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
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

	records, err := s.attendanceRepo.ListByUserPeriod(ctx, userID, activePeriod.ID)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}

	return result, nil
}

func mapToResponse(r attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		AttendancePeriodID: r.AttendancePeriodID,
		AttendanceDate:     r.AttendanceDate.Format("2006-01-02"),
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
