package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kitchencraft/site-api/internal/api/router"
	"github.com/kitchencraft/site-api/internal/awsconfig"
	"github.com/kitchencraft/site-api/internal/calculator"
	"github.com/kitchencraft/site-api/internal/catalog"
	appconfig "github.com/kitchencraft/site-api/internal/config"
	"github.com/kitchencraft/site-api/internal/contact"
	"github.com/kitchencraft/site-api/internal/integrations/pipedrive"
	"github.com/kitchencraft/site-api/internal/integrations/slack"
	"github.com/kitchencraft/site-api/internal/integrations/telegram"
	"github.com/kitchencraft/site-api/internal/leads"
	"github.com/kitchencraft/site-api/internal/observability/metrics"
	"github.com/kitchencraft/site-api/internal/storage"
	"github.com/kitchencraft/site-api/pkg/logging"
)

// Per-IP limit for contact form submissions.
const submitRateLimit = 2.0
const submitBurst = 5

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting site API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	leadsRepo := leads.NewPostgresRepository(pool)
	catalogRepo := catalog.NewPostgresRepository(pool)

	// Attachment storage
	awsCfg, err := awsconfig.Load(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	s3Client := awsconfig.NewS3Client(awsCfg, cfg.AWSEndpointOverride)

	var uploader contact.Uploader
	if up := storage.NewUploader(s3Client, cfg.StorageBucket, cfg.StoragePublicURL, logger); up.Enabled() {
		uploader = up
	} else {
		logger.Warn("attachment storage not configured, uploads disabled")
	}

	// Notification sinks; each one is optional and enabled by its credentials.
	var crm, chat, webhook contact.Sink
	if cfg.PipedriveEnabled() {
		crm, err = pipedrive.New(pipedrive.Config{
			BaseURL:  cfg.PipedriveAPIURL,
			APIToken: cfg.PipedriveAPIToken,
			Timeout:  cfg.IntegrationTimeout,
			Logger:   logger,
		})
		if err != nil {
			logger.Error("failed to init Pipedrive client", "error", err)
			os.Exit(1)
		}
	}
	if cfg.TelegramEnabled() {
		chat, err = telegram.New(telegram.Config{
			APIURL:   cfg.TelegramAPIURL,
			BotToken: cfg.TelegramBotToken,
			ChatID:   cfg.TelegramChatID,
			Timeout:  cfg.IntegrationTimeout,
			Logger:   logger,
		})
		if err != nil {
			logger.Error("failed to init Telegram client", "error", err)
			os.Exit(1)
		}
	}
	if cfg.SlackEnabled() {
		webhook, err = slack.New(slack.Config{
			WebhookURL: cfg.SlackWebhookURL,
			Timeout:    cfg.IntegrationTimeout,
			Logger:     logger,
		})
		if err != nil {
			logger.Error("failed to init Slack client", "error", err)
			os.Exit(1)
		}
	}

	contactMetrics := metrics.NewContactMetrics(prometheus.DefaultRegisterer)
	contactService := contact.NewService(uploader, crm, chat, webhook, leadsRepo, logger, contactMetrics)

	routerCfg := &router.Config{
		Logger:             logger,
		ContactHandler:     contact.NewHandler(contactService, logger),
		CatalogHandler:     catalog.NewHandler(catalogRepo, logger),
		CalculatorHandler:  calculator.NewHandler(calculator.DefaultConfig(), logger),
		LeadsHandler:       leads.NewHandler(leadsRepo, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		SubmitRateLimit:    submitRateLimit,
		SubmitBurst:        submitBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
