package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/dto"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees))
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	records, err := h.employeeService.Get(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to fetch employee")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and role are required"})
		return
	}

	employee, err := h.employeeService.Create(ctx, req.Name, req.Role)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

func (h *EmployeeHandler) AddAccomplishment(c *gin.Context) {
	ctx := c.Request.Context()

	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateAccomplishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description and period are required"})
		return
	}

	a, err := h.employeeService.AddAccomplishment(ctx, employeeID, req.Description, req.Period)
	if err != nil {
		respondError(c, err, "Failed to create accomplishment")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *EmployeeHandler) AddObservation(c *gin.Context) {
	ctx := c.Request.Context()

	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}

	o, err := h.employeeService.AddObservation(ctx, employeeID, req.Description, req.Category)
	if err != nil {
		respondError(c, err, "Failed to create observation")
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), employeeID); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

func (h *EmployeeHandler) UpdateAccomplishment(c *gin.Context) {
	ctx := c.Request.Context()

	accomplishmentID, ok := idParam(c, "Invalid accomplishment ID")
	if !ok {
		return
	}

	var req dto.UpdateAccomplishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description and period are required"})
		return
	}

	a, err := h.employeeService.UpdateAccomplishment(ctx, accomplishmentID, req.Description, req.Period)
	if err != nil {
		respondError(c, err, "Failed to update accomplishment")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *EmployeeHandler) DeleteAccomplishment(c *gin.Context) {
	accomplishmentID, ok := idParam(c, "Invalid accomplishment ID")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteAccomplishment(c.Request.Context(), accomplishmentID); err != nil {
		respondError(c, err, "Failed to delete accomplishment")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

func (h *EmployeeHandler) UpdateObservation(c *gin.Context) {
	ctx := c.Request.Context()

	observationID, ok := idParam(c, "Invalid observation ID")
	if !ok {
		return
	}

	var req dto.UpdateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}

	o, err := h.employeeService.UpdateObservation(ctx, observationID, req.Description, req.Category)
	if err != nil {
		respondError(c, err, "Failed to update observation")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *EmployeeHandler) DeleteObservation(c *gin.Context) {
	observationID, ok := idParam(c, "Invalid observation ID")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteObservation(c.Request.Context(), observationID); err != nil {
		respondError(c, err, "Failed to delete observation")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
