package reimbursement

import "errors"

var (
	ErrInvalidAmount         = errors.New("reimbursement amount must be greater than zero")
	ErrReimbursementNotFound = errors.New("reimbursement not found")
	ErrAlreadyDecided        = errors.New("reimbursement has already been approved or rejected")
	ErrInvalidStatus         = errors.New("status must be approved or rejected")
)
