package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/dmc/portal/internal/application/catalog"
	contractapp "github.com/dmc/portal/internal/application/contract"
	partnerapp "github.com/dmc/portal/internal/application/partner"
	"github.com/dmc/portal/internal/infrastructure/config"
	"github.com/dmc/portal/internal/infrastructure/esign"
	"github.com/dmc/portal/internal/infrastructure/logger"
	"github.com/dmc/portal/internal/infrastructure/pdf"
	"github.com/dmc/portal/internal/infrastructure/persistence"
	"github.com/dmc/portal/internal/interfaces/http/handler"
	"github.com/dmc/portal/internal/interfaces/http/middleware"
	"github.com/dmc/portal/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	offerRepo := persistence.NewGormOfferRepository(db.DB)
	counterpartyRepo := persistence.NewGormCounterpartyRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	envelopeRepo := persistence.NewGormEnvelopeRepository(db.DB)

	renderer := pdf.NewRenderer(cfg.Storage.Root)
	provider, err := buildProvider(cfg, log)
	if err != nil {
		log.Fatal("Failed to configure e-sign provider", zap.Error(err))
	}

	offerService := catalogapp.NewOfferService(offerRepo)
	counterpartyService := partnerapp.NewCounterpartyService(counterpartyRepo)
	contractService := contractapp.NewContractService(contractRepo, counterpartyRepo, offerRepo, renderer)
	signingService := contractapp.NewSigningService(
		contractRepo, envelopeRepo, counterpartyRepo, offerRepo, provider, renderer, log)

	if err := handler.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.CORSWithConfig(corsConfig(cfg)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	router.NewRouter(engine).
		Register(handler.NewOfferHandler(offerService)).
		Register(handler.NewCounterpartyHandler(counterpartyService)).
		Register(handler.NewContractHandler(contractService)).
		Register(handler.NewSigningHandler(signingService, provider)).
		Register(handler.NewSystemHandler(db)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}

func buildProvider(cfg *config.Config, log *zap.Logger) (esign.Provider, error) {
	switch cfg.ESign.Provider {
	case "stub":
		if cfg.ESign.SkipWebhookSignature {
			log.Warn("Webhook signature verification is disabled")
		}
		return esign.NewStubProvider(cfg.ESign.WebhookSecret, cfg.ESign.SkipWebhookSignature), nil
	default:
		return nil, fmt.Errorf("unknown e-sign provider %q", cfg.ESign.Provider)
	}
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		c.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		c.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		c.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return c
}
