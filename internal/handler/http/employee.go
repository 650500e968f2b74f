package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/employee"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AddMetrics(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	metricsService  metrics.MetricsService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, metricsService metrics.MetricsService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		metricsService:  metricsService,
	}
}

type employeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func toEmployeeResponse(e employee.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Department: e.Department,
		Position:   e.Position,
	}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service (DTO validation happens inside)
	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created successfully", "employee_id", created.EmployeeID)
	response.Created(w, "Employee added successfully", toEmployeeResponse(created))
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	data := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		data = append(data, toEmployeeResponse(e))
	}
	response.Success(w, data)
}

type metricsResponse struct {
	EmployeeID        string  `json:"employee_id"`
	ProductivityScore float64 `json:"productivity_score"`
	QualityScore      float64 `json:"quality_score"`
	TimelinessScore   float64 `json:"timeliness_score"`
	FinalScore        float64 `json:"final_score"`
}

// AddMetrics implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AddMetrics(w http.ResponseWriter, r *http.Request) {
	var addReq metrics.AddMetricsRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add metrics decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service (DTO validation happens inside)
	created, err := h.metricsService.Add(r.Context(), addReq)
	if err != nil {
		slog.Error("Add metrics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee metrics added successfully", "employee_id", addReq.EmployeeID)
	response.Created(w, "Employee metrics added successfully", metricsResponse{
		EmployeeID:        addReq.EmployeeID,
		ProductivityScore: created.Scores.Productivity,
		QualityScore:      created.Scores.Quality,
		TimelinessScore:   created.Scores.Timeliness,
		FinalScore:        created.Scores.Final,
	})
}
