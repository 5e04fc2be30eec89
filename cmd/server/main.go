package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevin07696/worldpay-gateway/internal/adapters/worldpay"
	"github.com/kevin07696/worldpay-gateway/internal/config"
	notificationHandler "github.com/kevin07696/worldpay-gateway/internal/handlers/notification"
	"github.com/kevin07696/worldpay-gateway/pkg/observability"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting worldpay notification server",
		zap.String("merchant", cfg.Worldpay.Merchant),
		zap.Bool("test_mode", cfg.Worldpay.TestMode),
		zap.Int("port", cfg.Server.Port))

	validator := worldpay.NewOriginValidator(worldpay.OriginValidatorConfig{
		HostSuffix:        cfg.Origin.HostSuffix,
		AllowedIPPrefixes: cfg.Origin.IPPrefixes,
		LookupTimeout:     cfg.Origin.LookupTimeout,
	}, nil, logger)

	mux := http.NewServeMux()
	mux.Handle(cfg.Server.NotifyPath, notificationHandler.NewHandler(validator, logger))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	metricsServer := observability.StartMetricsServer(fmt.Sprintf("%d", cfg.Server.MetricsPort))

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("notification server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("notification server shutdown failed", zap.Error(err))
	}
	if err := observability.ShutdownMetricsServer(metricsServer); err != nil {
		logger.Error("metrics server shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
