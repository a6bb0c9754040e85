package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/bookshelf/internal/application/catalog"
	"github.com/aescanero/bookshelf/internal/config"
	"github.com/aescanero/bookshelf/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/bookshelf/pkg/adapters/storage/memory"
	"github.com/aescanero/bookshelf/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting bookshelf",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Initialize adapters
	bookStore := memory.NewBookStore()

	metricsCollector := prometheus.NewCollector()
	metricsCollector.RegisterBooksGauge(bookStore.Count)

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Port:          cfg.HTTPPort,
		Mode:          cfg.GinMode,
		AllowedOrigin: cfg.AllowedOrigin,
		MaxBodyBytes:  cfg.MaxBodyBytes,
		ReadTimeout:   cfg.Timeouts.Read,
		WriteTimeout:  cfg.Timeouts.Write,
		IdleTimeout:   cfg.Timeouts.Idle,
		Store:         bookStore,
		Validator:     catalog.NewValidator(),
		Metrics:       metricsCollector,
		Logger:        logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("bookshelf started", zap.String("http_addr", cfg.GetHTTPAddr()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("bookshelf shut down complete",
		zap.Int("books_in_memory", bookStore.Count()))
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
