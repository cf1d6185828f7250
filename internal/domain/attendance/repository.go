package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Insert(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error)
	// CountDays counts distinct attendance dates for the user within the
	// period. Used by the payroll processor.
	CountDays(ctx context.Context, userID, periodID string) (int, error)
	ListByUserPeriod(ctx context.Context, userID, periodID string) ([]AttendanceRecord, error)
}
