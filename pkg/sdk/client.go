package healthdir

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/healthdir/internal/db"
	dbPostgres "github.com/kailas-cloud/healthdir/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/healthdir/internal/db/redis"
	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/search/request"
	"github.com/kailas-cloud/healthdir/internal/domain/search/result"
	"github.com/kailas-cloud/healthdir/internal/metrics"
	entityrepo "github.com/kailas-cloud/healthdir/internal/repository/entity"
	healthuc "github.com/kailas-cloud/healthdir/internal/usecase/health"
	searchuc "github.com/kailas-cloud/healthdir/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for mocks in tests.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) ([]result.Result, int, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the healthdir SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and waits for the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: domain.KeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("healthdir: database required (use WithRedis, WithValkey or WithPostgres)")
	}

	store, repo, err := createStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("healthdir: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	searchSvc := searchuc.New(repo)
	if cfg.metricsReg != nil {
		rec, err := metrics.NewSearchRecorder(cfg.metricsReg)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("healthdir: %w", err)
		}
		searchSvc = searchSvc.WithRecorder(rec)
	}

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		healthSvc: healthuc.New(store),
		obs:       obs,
	}, nil
}

func createStore(ctx context.Context, cfg *clientConfig) (db.Store, searchuc.Repository, error) {
	switch cfg.driver {
	case "redis", "valkey":
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, nil, fmt.Errorf("healthdir: %s address required", cfg.driver)
		}
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			Standalone: cfg.standalone,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("healthdir: create %s store: %w", cfg.driver, err)
		}
		return s, entityrepo.NewJSON(s, cfg.keyPrefix), nil
	case "postgres":
		s, err := dbPostgres.Open(ctx, cfg.dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("healthdir: create postgres store: %w", err)
		}
		return s, entityrepo.NewSQL(s), nil
	default:
		return nil, nil, fmt.Errorf("healthdir: unknown driver %q", cfg.driver)
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
