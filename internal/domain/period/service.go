package period

import "context"

type PeriodService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetActivePeriod(ctx context.Context) (PeriodResponse, error)
	DeactivatePeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)
}
