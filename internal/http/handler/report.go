package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/dto"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

const generateFailedMessage = "Failed to generate report"

type ReportHandler struct {
	reportService service.ReportService
	timeout       time.Duration
}

// NewReportHandler bounds each generation by timeout. Zero leaves it bounded
// only by the client connection.
func NewReportHandler(reportService service.ReportService, timeout time.Duration) *ReportHandler {
	return &ReportHandler{reportService: reportService, timeout: timeout}
}

func (h *ReportHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldsMessage})
		return
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	text, err := h.reportService.Generate(ctx, req.ToParams())
	if err != nil {
		respondError(c, err, generateFailedMessage)
		return
	}

	h.respondReport(ctx, c, text)
}

func (h *ReportHandler) GenerateForEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.EmployeeReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldsMessage})
		return
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	text, err := h.reportService.GenerateForEmployee(ctx, employeeID, req.Period, req.Framework, req.Year)
	if err != nil {
		respondError(c, err, generateFailedMessage)
		return
	}

	h.respondReport(ctx, c, text)
}

func (h *ReportHandler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := h.reportService.Render(ctx, req.Markdown)
	if err != nil {
		respondError(c, err, "Failed to render report")
		return
	}

	c.JSON(http.StatusOK, dto.RenderResponse{HTML: html})
}

// respondReport answers with the report, adding HTML when ?render=true.
func (h *ReportHandler) respondReport(ctx context.Context, c *gin.Context, text string) {
	resp := dto.GenerateReportResponse{Report: text}

	if render, _ := strconv.ParseBool(c.Query("render")); render {
		html, err := h.reportService.Render(ctx, text)
		if err != nil {
			respondError(c, err, "Failed to render report")
			return
		}
		resp.HTML = html
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReportHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func employeeIDParam(c *gin.Context) (int64, bool) {
	return idParam(c, "invalid employee id")
}

// idParam parses the :id path segment, answering 400 with message when it is
// not a positive integer.
func idParam(c *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return 0, false
	}
	return id, true
}
