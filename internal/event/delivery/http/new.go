package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Month(c *gin.Context)
	Status(c *gin.Context)
	ExportICS(c *gin.Context)
	Screenshot(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
