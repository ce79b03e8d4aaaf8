package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the browser UI.
type Handler interface {
	Index(c *gin.Context)
	Extract(c *gin.Context)
}

type handler struct {
	l    log.Logger
	uc   event.UseCase
	tmpl *template.Template
}

// New parses the embedded templates and creates the UI handler.
func New(l log.Logger, uc event.UseCase) (Handler, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &handler{l: l, uc: uc, tmpl: tmpl}, nil
}
