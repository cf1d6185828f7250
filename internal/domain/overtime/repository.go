package overtime

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OvertimeRepository interface {
	Insert(ctx context.Context, record OvertimeRecord) (OvertimeRecord, error)
	ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error)
	// SumHours totals the user's overtime hours within the period.
	SumHours(ctx context.Context, userID, periodID string) (decimal.Decimal, error)
	ListByUserPeriod(ctx context.Context, userID, periodID string) ([]OvertimeRecord, error)
}
