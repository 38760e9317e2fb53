package router

import (
	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/handler"
)

// EmployeeRouter sets up employee record routes and per-employee reports.
func EmployeeRouter(rg *gin.RouterGroup, h *handler.EmployeeHandler, awards *handler.AwardHandler, reports *handler.ReportHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/accomplishments", h.AddAccomplishment)
	rg.POST("/:id/observations", h.AddObservation)
	rg.POST("/:id/awards", awards.Add)
	rg.POST("/:id/report", reports.GenerateForEmployee)
}

// RecordRouter sets up edits of individual accomplishments and observations.
func RecordRouter(rg *gin.RouterGroup, h *handler.EmployeeHandler) {
	accomplishments := rg.Group("/accomplishments")
	accomplishments.PUT("/:id", h.UpdateAccomplishment)
	accomplishments.DELETE("/:id", h.DeleteAccomplishment)

	observations := rg.Group("/observations")
	observations.PUT("/:id", h.UpdateObservation)
	observations.DELETE("/:id", h.DeleteObservation)
}
