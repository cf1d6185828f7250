package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/overtime"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http/response"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Submit implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.overtimeService.SubmitOvertime(r.Context(), req)
	if err != nil {
		slog.Error("SubmitOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime submitted", resp)
}

// ListMine implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.overtimeService.ListMyOvertime(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
