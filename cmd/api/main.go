package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mearaf/codebridge-website/internal/api/router"
	"github.com/Mearaf/codebridge-website/internal/availability"
	"github.com/Mearaf/codebridge-website/internal/booking"
	"github.com/Mearaf/codebridge-website/internal/chat"
	appconfig "github.com/Mearaf/codebridge-website/internal/config"
	"github.com/Mearaf/codebridge-website/internal/content"
	"github.com/Mearaf/codebridge-website/internal/forms"
	"github.com/Mearaf/codebridge-website/internal/gcal"
	"github.com/Mearaf/codebridge-website/internal/notify"
	"github.com/Mearaf/codebridge-website/internal/observability/metrics"
	"github.com/Mearaf/codebridge-website/pkg/logging"
)

func main() {
	// Load .env in development; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting codebridge-website API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Storage: Postgres when configured, in-memory otherwise so the site
	// still works on a fresh checkout.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("connected to postgres")
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	var formsRepo forms.Repository = forms.NewInMemoryRepository()
	var contentRepo content.Repository = content.NewInMemoryRepository()
	var bookingRepo booking.Repository = booking.NewInMemoryRepository()
	if pool != nil {
		formsRepo = forms.NewPostgresRepository(pool)
		contentRepo = content.NewPostgresRepository(pool)
		bookingRepo = booking.NewPostgresRepository(pool)
	}

	registry := prometheus.NewRegistry()
	chatMetrics := metrics.NewChatMetrics(registry)
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// Notifications
	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
	var notifier forms.Notifier
	if sender != nil {
		notifier = notify.NewService(sender, cfg.NotifyEmail, logger)
	} else {
		logger.Warn("SENDGRID_API_KEY not set, submission alerts disabled")
	}

	// Chat: scripted rules always work; the generative tier needs a key.
	sessions := chat.NewInMemorySessionStore()
	var generator chat.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gen, err := chat.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to initialize gemini client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = gen.Close() }()
		generator = gen
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat runs in scripted mode only")
	}
	responder := chat.NewResponder(generator, sessions, cfg.ChatTimeout, logger, chatMetrics)
	chatHandler := chat.NewHandler(responder, sessions, logger)

	// Booking: without calendar credentials, availability and booking
	// report upstream failure instead of inventing free slots.
	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		logger.Error("invalid business timezone", "tz", cfg.BusinessTimezone, "error", err)
		os.Exit(1)
	}
	var provider booking.CalendarProvider
	if cfg.CalendarCredentialsJSON != "" {
		client, err := gcal.NewClient(ctx, gcal.Config{
			CredentialsJSON: []byte(cfg.CalendarCredentialsJSON),
			CalendarID:      cfg.CalendarID,
			BusinessEmail:   cfg.BusinessEmail,
			Timezone:        cfg.BusinessTimezone,
		})
		if err != nil {
			logger.Error("failed to initialize google calendar client", "error", err)
			os.Exit(1)
		}
		provider = client
	} else {
		logger.Warn("GOOGLE_CALENDAR_CREDENTIALS not set, booking endpoints will report calendar unavailable")
	}
	window := availability.Config{
		StartHour:   cfg.BusinessStartHour,
		EndHour:     cfg.BusinessEndHour,
		SlotMinutes: cfg.SlotMinutes,
	}
	bookingService := booking.NewService(provider, bookingRepo, window, loc, logger, bookingMetrics)
	bookingHandler := booking.NewHandler(bookingService, logger)

	formsHandler := forms.NewHandler(formsRepo, notifier, logger)
	contentHandler := content.NewHandler(contentRepo, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		BookingHandler:     bookingHandler,
		FormsHandler:       formsHandler,
		ContentHandler:     contentHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.AllowedOrigins,
		FormRatePerSecond:  cfg.FormRatePerSecond,
		FormRateBurst:      cfg.FormRateBurst,
	})

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
}
