package http

import (
	"pagination-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RequestID())
	{
		api.GET("/page-range", h.Compute)
		api.GET("/page-range/widget", h.Widget)
	}
}
