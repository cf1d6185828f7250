package reimbursement

import (
	"context"
	"testing"
	"time"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/reimbursement"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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
	active  string
}

func newFakePeriodRepo(active period.AttendancePeriod) *fakePeriodRepo {
	return &fakePeriodRepo{
		periods: map[string]period.AttendancePeriod{active.ID: active},
		active:  active.ID,
	}
}

func (r *fakePeriodRepo) Create(ctx context.Context, p period.AttendancePeriod) (period.AttendancePeriod, error) {
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
	if p, ok := r.periods[r.active]; ok && p.IsActive {
		return p, nil
	}
	return period.AttendancePeriod{}, period.ErrNoActivePeriod
}

func (r *fakePeriodRepo) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
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
	return nil, nil
}

type fakeReimbursementRepo struct {
	records map[string]reimbursement.Reimbursement
}

func newFakeReimbursementRepo() *fakeReimbursementRepo {
	return &fakeReimbursementRepo{records: map[string]reimbursement.Reimbursement{}}
}

func (r *fakeReimbursementRepo) Insert(ctx context.Context, rec reimbursement.Reimbursement) (reimbursement.Reimbursement, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *fakeReimbursementRepo) GetByID(ctx context.Context, id string) (reimbursement.Reimbursement, error) {
	rec, ok := r.records[id]
	if !ok {
		return reimbursement.Reimbursement{}, reimbursement.ErrReimbursementNotFound
	}
	return rec, nil
}

func (r *fakeReimbursementRepo) UpdateStatus(ctx context.Context, id string, status reimbursement.Status, decidedBy string) (reimbursement.Reimbursement, error) {
	rec, ok := r.records[id]
	if !ok {
		return reimbursement.Reimbursement{}, reimbursement.ErrReimbursementNotFound
	}
	if rec.Status != reimbursement.StatusPending {
		return reimbursement.Reimbursement{}, reimbursement.ErrAlreadyDecided
	}
	now := time.Now().UTC()
	rec.Status = status
	rec.DecidedBy = &decidedBy
	rec.DecidedAt = &now
	r.records[id] = rec
	return rec, nil
}

func (r *fakeReimbursementRepo) SumApproved(ctx context.Context, userID, periodID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, rec := range r.records {
		if rec.UserID == userID && rec.AttendancePeriodID == periodID && rec.Status == reimbursement.StatusApproved {
			sum = sum.Add(rec.Amount)
		}
	}
	return sum, nil
}

func (r *fakeReimbursementRepo) ListByUserPeriod(ctx context.Context, userID, periodID string) ([]reimbursement.Reimbursement, error) {
	var out []reimbursement.Reimbursement
	for _, rec := range r.records {
		if rec.UserID == userID && rec.AttendancePeriodID == periodID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func activeJune() period.AttendancePeriod {
	return period.AttendancePeriod{
		ID:        uuid.NewString(),
		Name:      "June 2025",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func newTestService(periodRepo *fakePeriodRepo, repo *fakeReimbursementRepo) *ReimbursementServiceImpl {
	return &ReimbursementServiceImpl{
		reimbursementRepo: repo,
		periodRepo:        periodRepo,
		recorder:          audit.NopRecorder{},
	}
}

func TestReimbursementService_Submit_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo(activeJune()), newFakeReimbursementRepo())

	got, err := svc.SubmitReimbursement(authedContext(t, "emp-1"), reimbursement.SubmitReimbursementRequest{
		Amount:      decimal.NewFromInt(250000),
		Description: "Travel expenses",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", got.UserID)
	assert.Equal(t, string(reimbursement.StatusPending), got.Status)
	assert.Nil(t, got.DecidedBy)
}

func TestReimbursementService_Submit_InvalidAmount(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo(activeJune()), newFakeReimbursementRepo())
	ctx := authedContext(t, "emp-1")

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		_, err := svc.SubmitReimbursement(ctx, reimbursement.SubmitReimbursementRequest{
			Amount:      amount,
			Description: "Travel expenses",
		})
		assert.Error(t, err, "amount %s should be rejected", amount)
	}
}

func TestReimbursementService_Submit_ProcessedPeriod(t *testing.T) {
	t.Parallel()

	p := activeJune()
	p.PayrollProcessed = true
	svc := newTestService(newFakePeriodRepo(p), newFakeReimbursementRepo())

	_, err := svc.SubmitReimbursement(authedContext(t, "emp-1"), reimbursement.SubmitReimbursementRequest{
		Amount:      decimal.NewFromInt(250000),
		Description: "Travel expenses",
	})
	assert.ErrorIs(t, err, period.ErrPeriodProcessed)
}

func TestReimbursementService_UpdateStatus_Approve(t *testing.T) {
	t.Parallel()

	periodRepo := newFakePeriodRepo(activeJune())
	repo := newFakeReimbursementRepo()
	svc := newTestService(periodRepo, repo)

	submitted, err := svc.SubmitReimbursement(authedContext(t, "emp-1"), reimbursement.SubmitReimbursementRequest{
		Amount:      decimal.NewFromInt(250000),
		Description: "Travel expenses",
	})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(authedContext(t, "admin-1"), reimbursement.UpdateStatusRequest{
		ID:     submitted.ID,
		Status: string(reimbursement.StatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, string(reimbursement.StatusApproved), got.Status)
	require.NotNil(t, got.DecidedBy)
	assert.Equal(t, "admin-1", *got.DecidedBy)

	sum, err := repo.SumApproved(context.Background(), "emp-1", submitted.AttendancePeriodID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(250000)))
}

func TestReimbursementService_UpdateStatus_AlreadyDecided(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo(activeJune()), newFakeReimbursementRepo())

	submitted, err := svc.SubmitReimbursement(authedContext(t, "emp-1"), reimbursement.SubmitReimbursementRequest{
		Amount:      decimal.NewFromInt(250000),
		Description: "Travel expenses",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(authedContext(t, "admin-1"), reimbursement.UpdateStatusRequest{
		ID:     submitted.ID,
		Status: string(reimbursement.StatusRejected),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(authedContext(t, "admin-1"), reimbursement.UpdateStatusRequest{
		ID:     submitted.ID,
		Status: string(reimbursement.StatusApproved),
	})
	assert.ErrorIs(t, err, reimbursement.ErrAlreadyDecided)
}

func TestReimbursementService_UpdateStatus_ProcessedPeriod(t *testing.T) {
	t.Parallel()

	periodRepo := newFakePeriodRepo(activeJune())
	svc := newTestService(periodRepo, newFakeReimbursementRepo())

	submitted, err := svc.SubmitReimbursement(authedContext(t, "emp-1"), reimbursement.SubmitReimbursementRequest{
		Amount:      decimal.NewFromInt(250000),
		Description: "Travel expenses",
	})
	require.NoError(t, err)

	_, err = periodRepo.MarkProcessed(context.Background(), submitted.AttendancePeriodID)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(authedContext(t, "admin-1"), reimbursement.UpdateStatusRequest{
		ID:     submitted.ID,
		Status: string(reimbursement.StatusApproved),
	})
	assert.ErrorIs(t, err, period.ErrPeriodProcessed)
}

func TestReimbursementService_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo(activeJune()), newFakeReimbursementRepo())

	_, err := svc.UpdateStatus(authedContext(t, "admin-1"), reimbursement.UpdateStatusRequest{
		ID:     uuid.NewString(),
		Status: "pending",
	})
	assert.Error(t, err)
}

func TestReimbursementService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo(activeJune()), newFakeReimbursementRepo())

	_, err := svc.UpdateStatus(authedContext(t, "admin-1"), reimbursement.UpdateStatusRequest{
		ID:     uuid.NewString(),
		Status: string(reimbursement.StatusApproved),
	})
	assert.ErrorIs(t, err, reimbursement.ErrReimbursementNotFound)
}

func TestReimbursementService_ListMine(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePeriodRepo(activeJune()), newFakeReimbursementRepo())
	ctx := authedContext(t, "emp-1")

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitReimbursement(ctx, reimbursement.SubmitReimbursementRequest{
			Amount:      decimal.NewFromInt(100000),
			Description: "Meal allowance",
		})
		require.NoError(t, err)
	}

	got, err := svc.ListMyReimbursements(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
