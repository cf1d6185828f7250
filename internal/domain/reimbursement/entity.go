package reimbursement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Reimbursement requests stay pending until an admin decides them. Only
// approved amounts are counted into a payslip, and a request can no longer
// be decided once its owning period has been processed.
type Reimbursement struct {
	ID                 string
	UserID             string
	AttendancePeriodID string
	Amount             decimal.Decimal
	Description        string
	Status             Status
	DecidedBy          *string
	DecidedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
