package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hours bounds for a single overtime submission.
var (
	MinHours = decimal.NewFromFloat(0.5)
	MaxHours = decimal.NewFromFloat(3.0)
)

type OvertimeRecord struct {
	ID                 string
	UserID             string
	AttendancePeriodID string
	OvertimeDate       time.Time
	HoursWorked        decimal.Decimal
	Description        *string
	CreatedAt          time.Time
}
