package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
	"github.com/scorecard-pro/scorecard-backend-go/internal/handler/http/response"
)

type MetricsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Top(w http.ResponseWriter, r *http.Request)
	Filter(w http.ResponseWriter, r *http.Request)
}

type MetricsHandlerImpl struct {
	reportService report.ReportService
}

func NewMetricsHandler(reportService report.ReportService) MetricsHandler {
	return &MetricsHandlerImpl{
		reportService: reportService,
	}
}

// List implements MetricsHandler. Public: the dashboard table reads it
// without a token.
func (h *MetricsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.List(r.Context(), report.CategoryEmployees, nil)
	if err != nil {
		slog.Error("List metrics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee metrics retrieved", rows)
}

// Summary implements MetricsHandler.
func (h *MetricsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Summary(r.Context())
	if err != nil {
		slog.Error("Metrics summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Metrics summary retrieved", summary)
}

// Top implements MetricsHandler.
func (h *MetricsHandlerImpl) Top(w http.ResponseWriter, r *http.Request) {
	top, err := h.reportService.Top(r.Context(), 10)
	if err != nil {
		slog.Error("Top metrics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Top 10 employees retrieved", top)
}

// Filter implements MetricsHandler.
func (h *MetricsHandlerImpl) Filter(w http.ResponseWriter, r *http.Request) {
	categoryParam := r.URL.Query().Get("category")
	if categoryParam == "" {
		response.BadRequest(w, "Category parameter is required", nil)
		return
	}

	category, err := report.ParseCategory(categoryParam)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	count, err := parseCountParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.List(r.Context(), category, count)
	if err != nil {
		slog.Error("Filter metrics service error", "error", err, "category", category)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Filtered metrics retrieved", rows)
}

// parseCountParam reads the optional count query parameter. nil means the
// caller did not limit the result.
func parseCountParam(r *http.Request) (*int, error) {
	countParam := r.URL.Query().Get("count")
	if countParam == "" {
		return nil, nil
	}

	count, err := strconv.Atoi(countParam)
	if err != nil || count <= 0 {
		return nil, report.ErrInvalidCount
	}
	return &count, nil
}
