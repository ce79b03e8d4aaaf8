package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/screenshot"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/llmprovider"
	"calendar-assistant/pkg/log"
)

// @title       Calendar Assistant API
// @description Turns transcripts and task instructions into calendar events with a month view, detail view and iCalendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. LLM providers. Without any the server still starts and extraction reports 503.
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			logger.Error(ctx, "Failed to initialize LLM providers: ", err)
			return
		}
		logger.Warnf(ctx, "No LLM provider available, extraction is disabled: %v", err)
	}
	var maxTotalTimeout time.Duration
	if cfg.LLM.MaxTotalTimeout != "" {
		maxTotalTimeout, _ = time.ParseDuration(cfg.LLM.MaxTotalTimeout) // validated by config.Load
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	// 5. Screenshot capturer (optional)
	var capturer event.Capturer
	if cfg.Screenshot.Enabled {
		c, capErr := screenshot.New(logger, screenshot.Options{
			BaseURL:    cfg.Screenshot.BaseURL,
			CookieName: cfg.Session.CookieName,
			Width:      cfg.Screenshot.Width,
			Height:     cfg.Screenshot.Height,
			Timeout:    cfg.Screenshot.Timeout,
		})
		if capErr != nil {
			logger.Warnf(ctx, "Screenshot capturer not available: %v", capErr)
		} else {
			capturer = c
			logger.Infof(ctx, "Screenshots enabled against %s", cfg.Screenshot.BaseURL)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			CookieName:     cfg.Session.CookieName,
			SessionTTL:     cfg.Session.TTL,
			ExtractPerMin:  cfg.RateLimit.ExtractPerMin,
			Burst:          cfg.RateLimit.Burst,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		LLM:         llmManager,
		DateMath:    dateMathParser,
		Capturer:    capturer,
		MaxSessions: cfg.Session.MaxSessions,
		SessionTTL:  cfg.Session.TTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
