package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List handles GET /api/v1/attendance
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		EmployeeNo: r.URL.Query().Get("employee_no"),
		Department: r.URL.Query().Get("department"),
	}

	if v := r.URL.Query().Get("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date_from must be in YYYY-MM-DD format", nil)
			return
		}
		filter.DateFrom = &t
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date_to must be in YYYY-MM-DD format", nil)
			return
		}
		filter.DateTo = &t
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.BadRequest(w, "limit must be a non-negative integer", nil)
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.BadRequest(w, "offset must be a non-negative integer", nil)
			return
		}
		filter.Offset = n
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeesStatus handles GET /api/v1/attendance/employees-status
func (h *AttendanceHandler) EmployeesStatus(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = t
	}

	result, err := h.attendanceService.EmployeesWithStatus(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManualClockIn handles POST /api/v1/attendance/manual/clock-in
func (h *AttendanceHandler) ManualClockIn(w http.ResponseWriter, r *http.Request) {
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

// ManualClockOut handles POST /api/v1/attendance/manual/clock-out
func (h *AttendanceHandler) ManualClockOut(w http.ResponseWriter, r *http.Request) {
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

// Correct handles PUT /api/v1/attendance/{id}
func (h *AttendanceHandler) Correct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Correct(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance corrected", result)
}
