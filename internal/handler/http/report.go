package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
	"github.com/scorecard-pro/scorecard-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DownloadPDF(w http.ResponseWriter, r *http.Request)
	Email(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// DownloadPDF implements ReportHandler.
func (h *ReportHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	category, err := report.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	count, err := parseCountParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pdfData, err := h.reportService.RenderPDF(r.Context(), category, count)
	if err != nil {
		slog.Error("Download PDF service error", "error", err, "category", category)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_metrics.pdf", category)))
	if _, err := w.Write(pdfData); err != nil {
		slog.Error("Download PDF write error", "error", err)
	}
}

// Email implements ReportHandler.
func (h *ReportHandlerImpl) Email(w http.ResponseWriter, r *http.Request) {
	var deliverReq report.DeliverRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&deliverReq); err != nil {
		slog.Error("Email report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service (DTO validation happens inside)
	if err := h.reportService.Deliver(r.Context(), deliverReq); err != nil {
		slog.Error("Email report service error", "error", err, "to", deliverReq.Email)
		response.HandleError(w, err)
		return
	}

	slog.Info("Report emailed successfully", "to", deliverReq.Email, "category", deliverReq.Category)
	response.SuccessWithMessage(w, "Report sent successfully", nil)
}

// Logs implements ReportHandler.
func (h *ReportHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.reportService.Logs(r.Context())
	if err != nil {
		slog.Error("List report logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
