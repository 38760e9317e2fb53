package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/handler"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

type RouterConfig struct {
	// ReportTimeout bounds each generation request.
	ReportTimeout time.Duration
	// RecordsEnabled mounts the /api/v1 employee records API.
	RecordsEnabled bool
	// Metrics is served at /metrics when set.
	Metrics http.Handler
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	reports := services.Reports()

	healthHandler := handler.NewHealthHandler(reports)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/generation", healthHandler.Generation)

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	reportHandler := handler.NewReportHandler(reports, cfg.ReportTimeout)
	router.POST("/api/generate-report", reportHandler.Generate)

	if !cfg.RecordsEnabled {
		return
	}

	v1 := router.Group("/api/v1")
	{
		employeeHandler := handler.NewEmployeeHandler(services.Employees())
		awardHandler := handler.NewAwardHandler(services.Awards())
		EmployeeRouter(v1.Group("/employees"), employeeHandler, awardHandler, reportHandler)
		RecordRouter(v1, employeeHandler)
		AwardRouter(v1, awardHandler)

		ReportRouter(v1.Group("/reports"), reportHandler)
	}
}
