package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/llm"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

const missingFieldsMessage = "Missing required fields"

// respondError maps service errors to a status and an {"error": ...} body.
// fallback is the message for anything unrecognised.
func respondError(c *gin.Context, err error, fallback string) {
	ctx := c.Request.Context()

	var vErr *service.ValidationError
	var genErr *llm.Error
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, service.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
	case errors.Is(err, service.ErrAccomplishmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Accomplishment not found"})
	case errors.Is(err, service.ErrObservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Observation not found"})
	case errors.Is(err, service.ErrAwardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Award not found"})
	case errors.Is(err, service.ErrAwardTypeExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Award type already exists"})
	case errors.Is(err, service.ErrRecordsDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &genErr):
		// Unavailable and failed generations read the same to the caller.
		c.JSON(http.StatusInternalServerError, gin.H{"error": genErr.UserMessage()})
	default:
		slog.ErrorContext(ctx, "unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
