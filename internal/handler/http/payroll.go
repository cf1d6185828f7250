package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/payroll"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	GetMyPayslip(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ProcessPayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		slog.Error("ProcessPayroll service error", "error", err, "period_id", req.AttendancePeriodID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", resp)
}

// GetMyPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMyPayslip(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	resp, err := h.payrollService.GetMyPayslip(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")

	resp, err := h.payrollService.GetPayrollSummary(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
