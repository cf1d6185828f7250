package response

import (
	"errors"
	"net/http"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/attendance"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/auth"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/overtime"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/payroll"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/reimbursement"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/user"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Attendance period not found")
	case errors.Is(err, period.ErrActivePeriodExists):
		Conflict(w, "An active attendance period already exists")
	case errors.Is(err, period.ErrPeriodOverlap):
		Conflict(w, "Attendance period overlaps an existing period")
	case errors.Is(err, period.ErrNoActivePeriod):
		BadRequest(w, "No active attendance period", nil)
	case errors.Is(err, period.ErrPeriodProcessed):
		Conflict(w, "Attendance period has already been processed")
	case errors.Is(err, period.ErrDateOutsidePeriod):
		BadRequest(w, "Date falls outside the active attendance period", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrWeekendNotAllowed):
		BadRequest(w, "Attendance cannot be submitted for a weekend date", nil)
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be submitted for a future date", nil)
	case errors.Is(err, attendance.ErrAlreadySubmitted):
		Conflict(w, "Attendance has already been submitted for this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrInvalidHours):
		BadRequest(w, "Overtime hours must be between 0.5 and 3.0", nil)
	case errors.Is(err, overtime.ErrAlreadySubmitted):
		Conflict(w, "Overtime has already been submitted for this date")

	// Reimbursement domain errors
	case errors.Is(err, reimbursement.ErrInvalidAmount):
		BadRequest(w, "Reimbursement amount must be greater than zero", nil)
	case errors.Is(err, reimbursement.ErrReimbursementNotFound):
		NotFound(w, "Reimbursement not found")
	case errors.Is(err, reimbursement.ErrAlreadyDecided):
		Conflict(w, "Reimbursement has already been approved or rejected")
	case errors.Is(err, reimbursement.ErrInvalidStatus):
		BadRequest(w, "Status must be approved or rejected", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrAlreadyProcessed):
		Conflict(w, "Payroll has already been processed for this period")
	case errors.Is(err, payroll.ErrPeriodInactive):
		Conflict(w, "Attendance period is not active")
	case errors.Is(err, payroll.ErrNoEmployees):
		BadRequest(w, "No active employees to process", nil)
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found for this period")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrInvalidWorkingDays),
		errors.Is(err, payroll.ErrInvalidSalary),
		errors.Is(err, payroll.ErrInvalidAttendance):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
