package main

import (
	"fmt"
	"net/http"

	"github.com/scorecard-pro/scorecard-backend-go/internal/config"
	appHTTP "github.com/scorecard-pro/scorecard-backend-go/internal/handler/http"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/database"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/email"
	"github.com/scorecard-pro/scorecard-backend-go/internal/pkg/jwt"
	"github.com/scorecard-pro/scorecard-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/scorecard-pro/scorecard-backend-go/internal/service/auth"
	employeeService "github.com/scorecard-pro/scorecard-backend-go/internal/service/employee"
	ingestService "github.com/scorecard-pro/scorecard-backend-go/internal/service/ingest"
	metricsService "github.com/scorecard-pro/scorecard-backend-go/internal/service/metrics"
	reportService "github.com/scorecard-pro/scorecard-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	metricsRepo := postgresql.NewMetricsRepository(db)
	reportLogRepo := postgresql.NewReportLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	mailer := email.NewMailer(cfg.SMTP)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	metricsSvc := metricsService.NewMetricsService(db, metricsRepo, employeeRepo)
	ingestSvc := ingestService.NewIngestService(db, employeeRepo, metricsRepo)
	reportSvc := reportService.NewReportService(metricsRepo, reportLogRepo, mailer, cfg.App.Product)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, metricsSvc)
	metricsHandler := appHTTP.NewMetricsHandler(reportSvc)
	uploadHandler := appHTTP.NewUploadHandler(ingestSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		metricsHandler,
		uploadHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
