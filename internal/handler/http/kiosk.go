package http

import (
	"encoding/json"
	"net/http"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/handler/http/response"
)

// KioskHandler serves the fingerprint devices. All routes sit behind the
// device API key, not user assertions.
type KioskHandler struct {
	attendanceService attendance.AttendanceService
}

func NewKioskHandler(attendanceService attendance.AttendanceService) *KioskHandler {
	return &KioskHandler{attendanceService: attendanceService}
}

// Mark handles POST /api/v1/device/attendance/mark
func (h *KioskHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.MarkByFingerprint(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ClockIn handles POST /api/v1/device/attendance/clock-in
func (h *KioskHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", result)
}

// ClockOut handles POST /api/v1/device/attendance/clock-out
func (h *KioskHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
