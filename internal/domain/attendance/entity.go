package attendance

import "time"

// AttendanceRecord is immutable once written; there is no update or delete
// path. Uniqueness of (UserID, AttendanceDate) is enforced by the store.
type AttendanceRecord struct {
	ID                 string
	UserID             string
	AttendancePeriodID string
	AttendanceDate     time.Time
	Notes              *string
	CreatedAt          time.Time
}
