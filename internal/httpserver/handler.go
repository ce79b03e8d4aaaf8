package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
)

// mapHandlers builds the router and returns the root handler, wrapped in
// CORS when origins are configured.
func (srv *HTTPServer) mapHandlers() (http.Handler, error) {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return nil, err
	}

	return mw.CORS(srv.gin), nil
}

func (srv *HTTPServer) registerMiddlewares() middleware.Middleware {
	srv.gin.Use(gin.Logger(), gin.Recovery())

	cfg := srv.middleware
	cfg.SecureCookie = srv.environment == string(model.EnvironmentProduction)

	ctx := context.Background()
	if len(cfg.AllowedOrigins) > 0 {
		srv.l.Infof(ctx, "CORS origins: %v", cfg.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS disabled, same-origin only (%s)", srv.environment)
	}

	return middleware.New(srv.l, cfg)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupEventDomain(ctx, api, mw); err != nil {
		return err
	}

	if srv.capturer == nil {
		srv.l.Infof(ctx, "Screenshot capturer not configured, /api/v1/calendar/screenshot.png returns 503")
	}

	return nil
}
