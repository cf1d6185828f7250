package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/reimbursement"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReimbursementHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ReimbursementHandlerImpl struct {
	reimbursementService reimbursement.ReimbursementService
}

func NewReimbursementHandler(reimbursementService reimbursement.ReimbursementService) ReimbursementHandler {
	return &ReimbursementHandlerImpl{reimbursementService: reimbursementService}
}

// Submit implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req reimbursement.SubmitReimbursementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitReimbursement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.reimbursementService.SubmitReimbursement(r.Context(), req)
	if err != nil {
		slog.Error("SubmitReimbursement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reimbursement submitted", resp)
}

// UpdateStatus implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req reimbursement.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateReimbursementStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.reimbursementService.UpdateStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateReimbursementStatus service error", "error", err, "reimbursement_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reimbursement status updated", resp)
}

// ListMine implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reimbursementService.ListMyReimbursements(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
