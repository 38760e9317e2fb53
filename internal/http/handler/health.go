package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/dto"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

type HealthHandler struct {
	reportService service.ReportService
}

func NewHealthHandler(reportService service.ReportService) *HealthHandler {
	return &HealthHandler{reportService: reportService}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Generation probes the generation service and answers 503 when it is down.
func (h *HealthHandler) Generation(c *gin.Context) {
	resp := dto.GenerationHealthResponse{Status: "ok", Model: h.reportService.Model()}
	if !h.reportService.GenerationHealthy(c.Request.Context()) {
		resp.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
