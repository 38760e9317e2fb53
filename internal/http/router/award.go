package router

import (
	"github.com/gin-gonic/gin"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/handler"
)

func AwardRouter(rg *gin.RouterGroup, h *handler.AwardHandler) {
	rg.GET("/award-types", h.ListTypes)
	rg.POST("/award-types", h.CreateType)

	awards := rg.Group("/awards")
	awards.PUT("/:id", h.Update)
	awards.DELETE("/:id", h.Delete)
}
