package httpserver

import (
	"calendar-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Calendar Assistant API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the server accepts requests. Extraction
// availability is reported separately so a missing API key does not take
// the calendar views down.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic and whether extraction and screenshots are available
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":     "ready",
		"message":    HealthMessage,
		"version":    HealthVersion,
		"service":    ServiceName,
		"extraction": srv.llmConfigured(),
		"screenshot": srv.capturer != nil,
	})
}

// llmConfigured asks the LLM whether any provider is available. LLMs that
// cannot tell are assumed configured.
func (srv *HTTPServer) llmConfigured() bool {
	if c, ok := srv.llm.(interface{ Configured() bool }); ok {
		return c.Configured()
	}
	return true
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
