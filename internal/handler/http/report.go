package http

import (
	"net/http"
	"strconv"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/report"
	"github.com/presensi-magang/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Summary implements ReportHandler. Month and year arrive as query params;
// both absent means the all-time report.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	var req report.SummaryRequest

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month harus berupa angka", nil)
			return
		}
		req.Month = month
	}

	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year harus berupa angka", nil)
			return
		}
		req.Year = year
	}

	result, err := h.reportService.Summary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := report.DailyRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.Daily(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
