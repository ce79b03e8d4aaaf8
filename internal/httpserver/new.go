package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	eventUC "calendar-assistant/internal/event/usecase"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	middleware      middleware.Config

	// Event domain
	llm         eventUC.LLM
	dateMath    *datemath.Parser
	capturer    event.Capturer
	maxSessions int
	sessionTTL  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
	Middleware      middleware.Config

	// Event domain
	LLM         eventUC.LLM
	DateMath    *datemath.Parser
	Capturer    event.Capturer // optional
	MaxSessions int
	SessionTTL  time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		llm:             cfg.LLM,
		dateMath:        cfg.DateMath,
		capturer:        cfg.Capturer,
		maxSessions:     cfg.MaxSessions,
		sessionTTL:      cfg.SessionTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// The rate limiter keys on ClientIP, so forwarded headers count only
	// when they come from a configured proxy.
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
