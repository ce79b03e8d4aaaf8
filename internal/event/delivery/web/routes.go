package web

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes mounts the UI at the root of r.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	ui := r.Group("/", mw.Session())
	{
		ui.GET("", h.Index)
		ui.POST("/extract", mw.RateLimit(), h.Extract)
	}
}
