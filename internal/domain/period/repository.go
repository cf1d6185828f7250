package period

import (
	"context"
	"time"
)

type PeriodRepository interface {
	Create(ctx context.Context, p AttendancePeriod) (AttendancePeriod, error)
	GetByID(ctx context.Context, id string) (AttendancePeriod, error)
	// FindActive returns the single active period, or ErrNoActivePeriod.
	FindActive(ctx context.Context) (AttendancePeriod, error)
	// ExistsOverlapping reports whether any period's range intersects
	// [start, end] inclusive.
	ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error)
	// MarkProcessed flips payroll_processed to true. The caller is
	// responsible for the exactly-once guarantee; see the payroll service.
	MarkProcessed(ctx context.Context, id string) (AttendancePeriod, error)
	Deactivate(ctx context.Context, id string) (AttendancePeriod, error)
	List(ctx context.Context) ([]AttendancePeriod, error)
}
