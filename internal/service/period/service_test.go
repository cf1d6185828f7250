package period

import (
	"context"
	"testing"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "admin",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

type fakePeriodRepo struct {
	periods map[string]period.AttendancePeriod
}

func newFakePeriodRepo(periods ...period.AttendancePeriod) *fakePeriodRepo {
	r := &fakePeriodRepo{periods: map[string]period.AttendancePeriod{}}
	for _, p := range periods {
		r.periods[p.ID] = p
	}
	return r
}

func (r *fakePeriodRepo) Create(ctx context.Context, p period.AttendancePeriod) (period.AttendancePeriod, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	r.periods[p.ID] = p
	return p, nil
}

func (r *fakePeriodRepo) GetByID(ctx context.Context, id string) (period.AttendancePeriod, error) {
	p, ok := r.periods[id]
	if !ok {
		return period.AttendancePeriod{}, period.ErrPeriodNotFound
	}
	return p, nil
}

func (r *fakePeriodRepo) FindActive(ctx context.Context) (period.AttendancePeriod, error) {
	for _, p := range r.periods {
		if p.IsActive {
			return p, nil
		}
	}
	return period.AttendancePeriod{}, period.ErrNoActivePeriod
}

func (r *fakePeriodRepo) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
	for _, p := range r.periods {
		if !start.After(p.EndDate) && !end.Before(p.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePeriodRepo) MarkProcessed(ctx context.Context, id string) (period.AttendancePeriod, error) {
	p, ok := r.periods[id]
	if !ok {
		return period.AttendancePeriod{}, period.ErrPeriodNotFound
	}
	p.PayrollProcessed = true
	r.periods[id] = p
	return p, nil
}

func (r *fakePeriodRepo) Deactivate(ctx context.Context, id string) (period.AttendancePeriod, error) {
	p, ok := r.periods[id]
	if !ok {
		return period.AttendancePeriod{}, period.ErrPeriodNotFound
	}
	p.IsActive = false
	r.periods[id] = p
	return p, nil
}

func (r *fakePeriodRepo) List(ctx context.Context) ([]period.AttendancePeriod, error) {
	out := make([]period.AttendancePeriod, 0, len(r.periods))
	for _, p := range r.periods {
		out = append(out, p)
	}
	return out, nil
}

func newTestService(repo *fakePeriodRepo) *PeriodServiceImpl {
	return &PeriodServiceImpl{
		periodRepo: repo,
		recorder:   audit.NopRecorder{},
	}
}

func TestPeriodService_CreatePeriod_Success(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodRepo()
	svc := newTestService(repo)

	got, err := svc.CreatePeriod(authedContext(t, "admin-1"), period.CreatePeriodRequest{
		Name:      "June 2025",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "June 2025", got.Name)
	assert.True(t, got.IsActive)
	assert.False(t, got.PayrollProcessed)
	// June 2025 has 21 weekdays
	assert.Equal(t, 21, got.TotalWorkingDays)
}

func TestPeriodService_CreatePeriod_ActivePeriodExists(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodRepo(period.AttendancePeriod{
		ID:        uuid.NewString(),
		Name:      "May 2025",
		StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	svc := newTestService(repo)

	_, err := svc.CreatePeriod(authedContext(t, "admin-1"), period.CreatePeriodRequest{
		Name:      "June 2025",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	assert.ErrorIs(t, err, period.ErrActivePeriodExists)
}

func TestPeriodService_CreatePeriod_Overlap(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodRepo(period.AttendancePeriod{
		ID:        uuid.NewString(),
		Name:      "May 2025",
		StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
	})
	svc := newTestService(repo)

	_, err := svc.CreatePeriod(authedContext(t, "admin-1"), period.CreatePeriodRequest{
		Name:      "Late May 2025",
		StartDate: "2025-05-15",
		EndDate:   "2025-06-14",
	})
	assert.ErrorIs(t, err, period.ErrPeriodOverlap)
}

func TestPeriodService_CreatePeriod_InvalidRange(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo())

	_, err := svc.CreatePeriod(authedContext(t, "admin-1"), period.CreatePeriodRequest{
		Name:      "Backwards",
		StartDate: "2025-06-30",
		EndDate:   "2025-06-01",
	})
	assert.Error(t, err)
}

func TestPeriodService_GetActivePeriod_NoneActive(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo())

	_, err := svc.GetActivePeriod(context.Background())
	assert.ErrorIs(t, err, period.ErrNoActivePeriod)
}

func TestPeriodService_DeactivatePeriod_Success(t *testing.T) {
	t.Parallel()

	p := period.AttendancePeriod{
		ID:        uuid.NewString(),
		Name:      "June 2025",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	repo := newFakePeriodRepo(p)
	svc := newTestService(repo)

	got, err := svc.DeactivatePeriod(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestPeriodService_DeactivatePeriod_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo())

	_, err := svc.DeactivatePeriod(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, period.ErrPeriodNotFound)
}
