package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/ingest"
	"github.com/scorecard-pro/scorecard-backend-go/internal/handler/http/response"
)

// maxUploadSize caps the parsed multipart form at 10 MiB.
const maxUploadSize = 10 << 20

type UploadHandler interface {
	UploadMetrics(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	ingestService ingest.IngestService
}

func NewUploadHandler(ingestService ingest.IngestService) UploadHandler {
	return &UploadHandlerImpl{
		ingestService: ingestService,
	}
}

// UploadMetrics implements UploadHandler. When the batch contained duplicate
// employees the response body is the duplicates workbook itself, so the
// operator gets the conflicting rows back as a file.
func (h *UploadHandlerImpl) UploadMetrics(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Upload metrics form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Upload metrics file error", "error", err)
		response.HandleError(w, ingest.ErrNoFile)
		return
	}
	defer file.Close()

	result, err := h.ingestService.IngestFile(r.Context(), header.Filename, file)
	if err != nil {
		slog.Error("Upload metrics service error", "error", err, "filename", header.Filename)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee metrics uploaded",
		"filename", header.Filename,
		"processed", result.Processed,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"duplicates", result.DuplicateCount,
	)

	if len(result.DuplicateWorkbook) > 0 {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ingest.DuplicateFilename))
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write(result.DuplicateWorkbook); err != nil {
			slog.Error("Upload metrics write duplicates error", "error", err)
		}
		return
	}

	response.Created(w, "Employee metrics uploaded successfully", result)
}
