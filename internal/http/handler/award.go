package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/dto"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

const awardFieldsMessage = "Award type ID and award date are required"

type AwardHandler struct {
	awardService service.AwardService
}

func NewAwardHandler(awardService service.AwardService) *AwardHandler {
	return &AwardHandler{awardService: awardService}
}

func (h *AwardHandler) ListTypes(c *gin.Context) {
	types, err := h.awardService.ListTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch award types")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *AwardHandler) CreateType(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAwardTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	t, err := h.awardService.CreateType(ctx, req.Name)
	if err != nil {
		respondError(c, err, "Failed to create award type")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *AwardHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}
	awardTypeID, date, ok := bindAward(c)
	if !ok {
		return
	}

	a, err := h.awardService.Add(ctx, employeeID, awardTypeID, date)
	if err != nil {
		respondError(c, err, "Failed to create award")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AwardHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	awardID, ok := idParam(c, "Invalid award ID")
	if !ok {
		return
	}
	awardTypeID, date, ok := bindAward(c)
	if !ok {
		return
	}

	a, err := h.awardService.Update(ctx, awardID, awardTypeID, date)
	if err != nil {
		respondError(c, err, "Failed to update award")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AwardHandler) Delete(c *gin.Context) {
	awardID, ok := idParam(c, "Invalid award ID")
	if !ok {
		return
	}

	if err := h.awardService.Delete(c.Request.Context(), awardID); err != nil {
		respondError(c, err, "Failed to delete award")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

func bindAward(c *gin.Context) (int64, string, bool) {
	var req dto.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": awardFieldsMessage})
		return 0, "", false
	}
	awardTypeID, err := req.AwardTypeID.Int64()
	if err != nil || awardTypeID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Award type ID must be a positive integer"})
		return 0, "", false
	}
	return awardTypeID, req.AwardDate, true
}
