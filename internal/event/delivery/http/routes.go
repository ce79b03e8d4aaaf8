package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route runs in a session; extraction is also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Session())

	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.GET("", h.List)
		events.GET("/:id", h.Detail)
	}
	rg.GET("/events.ics", h.ExportICS)

	cal := rg.Group("/calendar")
	{
		cal.GET("", h.Month)
		cal.GET("/screenshot.png", h.Screenshot)
	}

	rg.GET("/status", h.Status)
}
