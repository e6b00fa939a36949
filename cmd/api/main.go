package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cimillas/provapub-api/internal/app"
	"github.com/cimillas/provapub-api/internal/clock"
	"github.com/cimillas/provapub-api/internal/config"
	"github.com/cimillas/provapub-api/internal/payment"
	"github.com/cimillas/provapub-api/internal/storage/postgres"
	transporthttp "github.com/cimillas/provapub-api/internal/transport/http"
	"github.com/cimillas/provapub-api/migrations"
)

const startupTimeout = 5 * time.Second

func main() {
	cfg, envFile, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if envFile == "" {
		logger.Warn(".env not found in current or parent directories")
	} else {
		logger.Info("loaded env", zap.String("path", envFile))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("api stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	applied, err := migrations.Apply(startupCtx, pool)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied", zap.Strings("applied", applied))

	clk := clock.NewSystem()
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	catalogSvc := app.NewCatalogService(productRepo, customerRepo, app.WithPageSize(cfg.PageSize))
	eligibilitySvc := app.NewEligibilityService(customerRepo, orderRepo, clk)
	methods := payment.NewRegistry(payment.Defaults(logger.Named("payment"))...)
	orderSvc := app.NewOrderService(orderRepo, methods, clk)

	handler := transporthttp.NewRouter(transporthttp.Services{
		Products:    catalogSvc,
		Customers:   catalogSvc,
		Eligibility: eligibilitySvc,
		Orders:      orderSvc,
		DB:          pool,
	}, cfg.CORSOrigins, logger.Named("http"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("api listening",
		zap.String("port", cfg.Port),
		zap.Strings("payment_methods", methods.Names()),
	)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
