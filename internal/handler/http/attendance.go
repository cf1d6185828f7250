package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/domain/attendance"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http/response"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Submit implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.SubmitAttendance(r.Context(), req)
	if err != nil {
		slog.Error("SubmitAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted", resp)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListMyAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
