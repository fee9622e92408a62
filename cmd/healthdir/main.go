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

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/healthdir/internal/config"
	"github.com/kailas-cloud/healthdir/internal/db"
	dbPostgres "github.com/kailas-cloud/healthdir/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/healthdir/internal/db/redis"
	logpkg "github.com/kailas-cloud/healthdir/internal/logger"
	"github.com/kailas-cloud/healthdir/internal/metrics"
	entityrepo "github.com/kailas-cloud/healthdir/internal/repository/entity"
	chiTransport "github.com/kailas-cloud/healthdir/internal/transport/chi"
	healthuc "github.com/kailas-cloud/healthdir/internal/usecase/health"
	searchuc "github.com/kailas-cloud/healthdir/internal/usecase/search"
	"github.com/kailas-cloud/healthdir/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting healthdir API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx := context.Background()

	store, repo, err := openCorpus(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	if se, ok := store.(schemaEnsurer); ok {
		if err := se.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to prepare schema", zap.Error(err))
		}
	}

	recorder, err := metrics.NewSearchRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("Failed to register search metrics", zap.Error(err))
	}

	searchSvc := searchuc.New(repo).WithRecorder(recorder)
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(searchSvc, healthSvc).WithLimits(chiTransport.Limits{
		Default: cfg.Search.DefaultLimit,
		Max:     cfg.Search.MaxLimit,
	})
	r := chiTransport.NewRouter(server, logger, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// schemaEnsurer is implemented by relational stores that own their DDL.
type schemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// openCorpus connects the configured backend and the repository reading from it.
func openCorpus(ctx context.Context, cfg config.Config) (db.Store, searchuc.Repository, error) {
	switch cfg.Database.Driver {
	case config.DriverRedis, config.DriverValkey:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Database.Addrs,
			Username:   cfg.Database.Username,
			Password:   cfg.Database.Password,
			DB:         cfg.Database.DB,
			Standalone: cfg.Database.Standalone,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%s store: %w", cfg.Database.Driver, err)
		}
		return store, entityrepo.NewJSON(store, cfg.Storage.KeyPrefix), nil
	case config.DriverPostgres:
		store, err := dbPostgres.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres store: %w", err)
		}
		return store, entityrepo.NewSQL(store), nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
