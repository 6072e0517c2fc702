package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/report"
	"github.com/fptrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DailySummary handles GET /api/v1/attendance/summary
func (h *ReportHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = t
	}

	result, err := h.reportService.DailySummary(r.Context(), date, r.URL.Query().Get("department"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySeries handles GET /api/v1/attendance/monthly
func (h *ReportHandler) MonthlySeries(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			response.BadRequest(w, "year must be a valid year", nil)
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		month = n
	}

	result, err := h.reportService.MonthlySeries(r.Context(), year, time.Month(month), r.URL.Query().Get("department"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
