package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/redis/go-redis/v9"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/auth"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/cache"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/config"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/database"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/email"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/logging"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/otp"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/routes"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(logging.StdoutHandler(), pgLogHandler)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

	// Pending registrations
	var (
		pending otp.Store
		rdb     *redis.Client
	)
	if cfg.OTPStore == "redis" {
		client, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		rdb = client
		pending = otp.NewRedisStore(rdb)
	} else {
		pending = otp.NewMemoryStore()
	}

	var mailer email.Sender = email.NewLoggingSender()
	if cfg.ResendAPIKey != "" {
		mailer = email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	}
	if cfg.MockOTP {
		slog.Warn("mock OTP enabled", "code", otp.MockCode)
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	partnerRepo := repository.NewPartnerRepository(database.DB)
	inquiryRepo := repository.NewInquiryRepository(database.DB)
	leadRepo := repository.NewLeadRepository(database.DB)
	portfolioRepo := repository.NewPortfolioRepository(database.DB)
	statsRepo := repository.NewStatsRepository(database.DB)

	// Services
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(userRepo, tokens)
	signupService := services.NewSignupService(userRepo, pending, otp.NewGenerator(cfg.MockOTP), mailer, tokens, cfg.OTPTTL)
	partnerService := services.NewPartnerService(partnerRepo, portfolioRepo)
	portfolioService := services.NewPortfolioService(partnerRepo, portfolioRepo, cfg.MockFileUpload)
	adminService := services.NewAdminService(partnerRepo, statsRepo)
	inquiryService := services.NewInquiryService(inquiryRepo, partnerRepo, leadRepo, cfg.MockFileUpload)
	leadService := services.NewLeadService(partnerRepo, leadRepo, inquiryRepo)

	// Handlers
	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(signupService, authService),
		Client:    handlers.NewClientHandler(inquiryService),
		Partner:   handlers.NewPartnerHandler(partnerService, leadService),
		Portfolio: handlers.NewPortfolioHandler(portfolioService),
		Admin:     handlers.NewAdminHandler(adminService),
		Health:    handlers.NewHealthHandler(func() error { return database.Ping(database.DB) }, cfg.OTPStore),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.NewErrorHandler(cfg.IsDevelopment()),
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, authService, h)

	// Metrics listen on a separate, private address
	var internal *fiber.App
	if cfg.MetricsAddr != "" {
		internal = fiber.New(fiber.Config{DisableStartupMessage: true})
		internal.Use(recover.New())
		routes.SetupInternal(internal)
		go func() {
			slog.Info("metrics listener starting", "addr", cfg.MetricsAddr)
			if err := internal.Listen(cfg.MetricsAddr); err != nil {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "otp_store", cfg.OTPStore)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if internal != nil {
		if err := internal.Shutdown(); err != nil {
			slog.Error("metrics listener shutdown error", "error", err)
		}
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
