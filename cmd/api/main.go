package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskboard/config"
	_ "taskboard/docs" // Swagger docs
	"taskboard/internal/httpserver"
	"taskboard/internal/middleware"
	"taskboard/internal/session"
	taskRepo "taskboard/internal/task/repository/supabase"
	"taskboard/internal/task/usecase"
	"taskboard/pkg/enricher"
	"taskboard/pkg/gcalendar"
	"taskboard/pkg/log"
	"taskboard/pkg/supabase"
)

// @title       Taskboard API
// @description Task management with webhook enrichment, hosted store persistence and schedule views.
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

	logger.Info(ctx, "Starting Taskboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Supabase.URL)

	// 3. Store and auth clients
	storeClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	authClient := supabase.NewAuthClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)

	sessions := session.New(authClient, logger)
	defer sessions.Close()

	// 4. Enrichment webhook client
	enricherClient := enricher.NewClient(cfg.Webhook.URL, cfg.Webhook.GroqAPIKey, cfg.Webhook.GroqModel)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task domain
	repo := taskRepo.New(storeClient, logger)
	taskUC := usecase.New(logger, repo, enricherClient, calendarClient, usecase.Config{
		SettleDelay: cfg.Webhook.SettleDelay,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Timezone:    "UTC",
	})

	// 7. Middleware
	mw := middleware.New(logger, cfg.Supabase.JWTSecret, cfg.Webhook.RateLimitPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TaskUseCase:     taskUC,
		SessionProvider: sessions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
