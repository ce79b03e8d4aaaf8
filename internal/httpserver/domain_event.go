package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "calendar-assistant/internal/event/delivery/http"
	eventWeb "calendar-assistant/internal/event/delivery/web"
	eventRepo "calendar-assistant/internal/event/repository/memory"
	eventUC "calendar-assistant/internal/event/usecase"
	"calendar-assistant/internal/middleware"
)

// setupEventDomain wires the event domain and registers its JSON API and UI routes.
func (srv *HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := eventRepo.New(srv.l, eventRepo.Options{
		MaxSessions: srv.maxSessions,
		TTL:         srv.sessionTTL,
	})

	// 2. UseCase
	uc := eventUC.New(srv.l, srv.llm, repo, srv.dateMath, srv.capturer)

	// 3. Handlers
	h := eventHTTP.New(srv.l, uc)
	ui, err := eventWeb.New(srv.l, uc)
	if err != nil {
		return err
	}

	// 4. Routes: /api/v1/events, /api/v1/calendar, /api/v1/status and the UI at /
	eventHTTP.RegisterRoutes(api, h, mw)
	eventWeb.RegisterRoutes(srv.gin, ui, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
