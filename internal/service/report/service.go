package report

import (
	"context"
	"fmt"
	"time"

	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/metrics"
	"github.com/scorecard-pro/scorecard-backend-go/internal/domain/report"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/email"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	metricsRepo metrics.MetricsRepository
	logRepo     report.LogRepository
	mailer      email.Mailer
	product     string
}

func NewReportService(metricsRepo metrics.MetricsRepository, logRepo report.LogRepository, mailer email.Mailer, product string) report.ReportService {
	return &ReportServiceImpl{
		metricsRepo: metricsRepo,
		logRepo:     logRepo,
		mailer:      mailer,
		product:     product,
	}
}

// List implements report.ReportService. Rows come back in storage order,
// truncated to count when one is given.
func (s *ReportServiceImpl) List(ctx context.Context, category report.Category, count *int) ([]report.Row, error) {
	if count != nil && *count <= 0 {
		return nil, report.ErrInvalidCount
	}

	switch category {
	case report.CategoryEmployees:
	case report.CategoryProjects, report.CategoryDepartments:
		return nil, report.ErrCategoryUnavailable
	default:
		return nil, report.ErrInvalidCategory
	}

	joined, err := s.metricsRepo.List(ctx, count)
	if err != nil {
		return nil, err
	}

	return toRows(joined), nil
}

// Summary aggregates every employee row into dashboard averages.
func (s *ReportServiceImpl) Summary(ctx context.Context) (report.Summary, error) {
	rows, err := s.List(ctx, report.CategoryEmployees, nil)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(rows), nil
}

// Top returns the n highest final scores. Ties keep storage order, so the
// result is stable across identical calls.
func (s *ReportServiceImpl) Top(ctx context.Context, n int) ([]report.TopRow, error) {
	if n <= 0 {
		return nil, report.ErrInvalidCount
	}

	joined, err := s.metricsRepo.ListTopByFinalScore(ctx, n)
	if err != nil {
		return nil, err
	}

	rows := make([]report.TopRow, 0, len(joined))
	for _, m := range joined {
		rows = append(rows, report.TopRow{
			EmployeeID:        m.EmployeeID,
			EmployeeName:      m.EmployeeName,
			FinalScore:        m.Scores.Final,
			ProductivityScore: m.Scores.Productivity,
			QualityScore:      m.Scores.Quality,
			TimelinessScore:   m.Scores.Timeliness,
		})
	}
	return rows, nil
}

func (s *ReportServiceImpl) RenderPDF(ctx context.Context, category report.Category, count *int) ([]byte, error) {
	rows, err := s.List(ctx, category, count)
	if err != nil {
		return nil, err
	}
	return export.MetricsPDF(category, rows)
}

// Deliver renders the PDF and spreadsheet reports and emails both as
// attachments. The delivery log records successful sends only.
func (s *ReportServiceImpl) Deliver(ctx context.Context, req report.DeliverRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	category, err := report.ParseCategory(req.Category)
	if err != nil {
		return err
	}

	count := report.DefaultDeliverCount
	if req.Count != nil {
		count = *req.Count
	}

	rows, err := s.List(ctx, category, &count)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return report.ErrNoData
	}

	pdfData, err := export.MetricsPDF(category, rows)
	if err != nil {
		return err
	}
	xlsxData, err := export.MetricsWorkbook(rows)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s Metrics Report From %s", category.Title(), s.product)
	body := fmt.Sprintf("Attached are the %s metrics reports (PDF & Excel).", category)

	attachments := []email.Attachment{
		{
			Filename:    fmt.Sprintf("%s_metrics_report.pdf", category),
			ContentType: "application/pdf",
			Data:        pdfData,
		},
		{
			Filename:    fmt.Sprintf("%s_metrics_report.xlsx", category),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        xlsxData,
		},
	}

	if err := s.mailer.Send(req.Email, subject, body, attachments); err != nil {
		return fmt.Errorf("%w: %s", report.ErrDeliveryFailed, err)
	}

	if _, err := s.logRepo.Append(ctx, req.Email, category, time.Now()); err != nil {
		return err
	}

	return nil
}

// Logs implements report.ReportService.
func (s *ReportServiceImpl) Logs(ctx context.Context) ([]report.Log, error) {
	return s.logRepo.List(ctx)
}

func toRows(joined []metrics.JoinedMetrics) []report.Row {
	rows := make([]report.Row, 0, len(joined))
	for _, m := range joined {
		rows = append(rows, report.Row{
			EmployeeName:      m.EmployeeName,
			ProductivityScore: m.Scores.Productivity,
			QualityScore:      m.Scores.Quality,
			TimelinessScore:   m.Scores.Timeliness,
			TotalScore:        m.Scores.Final,
		})
	}
	return rows
}
