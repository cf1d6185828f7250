package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/period"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PeriodHandlerImpl struct {
	periodService period.PeriodService
}

func NewPeriodHandler(periodService period.PeriodService) PeriodHandler {
	return &PeriodHandlerImpl{periodService: periodService}
}

// Create implements PeriodHandler.
func (h *PeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req period.CreatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.periodService.CreatePeriod(r.Context(), req)
	if err != nil {
		slog.Error("CreatePeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance period created", resp)
}

// GetActive implements PeriodHandler.
func (h *PeriodHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	resp, err := h.periodService.GetActivePeriod(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Deactivate implements PeriodHandler.
func (h *PeriodHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.periodService.DeactivatePeriod(r.Context(), id)
	if err != nil {
		slog.Error("DeactivatePeriod service error", "error", err, "period_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance period deactivated", resp)
}

// List implements PeriodHandler.
func (h *PeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.periodService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
