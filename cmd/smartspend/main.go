package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"smartspend/internal/config"
	"smartspend/internal/events"
	apphttp "smartspend/internal/http"
	applog "smartspend/internal/log"
	"smartspend/internal/oracle"
	"smartspend/internal/oracle/gemini"
	"smartspend/internal/services"
	"smartspend/internal/storage"
	"smartspend/internal/storage/memory"
	"smartspend/internal/store"

	"time"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{Level: cfg.SlogLevel(), Component: applog.ComponentApp})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Persistence backend
	var blobs store.BlobStore
	switch cfg.DataBackend {
	case "sqlite":
		sqliteStore, err := storage.NewSQLiteBlobStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open blob store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer sqliteStore.Close()
		blobs = sqliteStore
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		blobs = memory.New()
		logger.Info("Initialized memory backend")
	}

	entityStore := store.New(ctx, blobs)

	// Optional change-event stream
	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Events are an enhancement; run without them.
			logger.Warn("AMQP unavailable, change events disabled", "error", err)
		} else {
			publisher = p
			defer publisher.Close()
			logger.Info("Connected change-event publisher", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	// AI oracle
	var ora oracle.Oracle = oracle.Disabled{}
	if cfg.GeminiAPIKey != "" {
		ora = gemini.NewClient(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		logger.Info("AI oracle enabled", "model", cfg.GeminiModel)
	}

	srv := apphttp.NewServer(
		services.NewExpenseService(entityStore, ora, publisher),
		services.NewCategoryService(entityStore, publisher),
		services.NewDebtService(entityStore, publisher),
		services.NewSessionService(entityStore),
		services.NewInsightService(entityStore, ora),
		entityStore,
		cfg.CurrencySymbol,
	)

	httpServer := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        srv.Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting smartspend server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
