package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-drift/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-drift/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-drift/internal/config"
	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
	"github.com/comitanigiacomo/kanso-drift/internal/core/workers"
)

const (
	reviewQueueSize = 16
	linkIssuer      = "kanso-drift"
)

type app struct {
	Router *gin.Engine
	Worker *workers.ReviewWorker

	Checkins *services.CheckinService
	Reviews  *services.ReviewService

	db    *sqlx.DB
	redis *redis.Client
}

// newApp wires storage, services, the review worker and the router. The
// worker is returned unstarted.
func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	clock, err := cfg.Clock()
	if err != nil {
		return nil, err
	}
	scorer, err := cfg.Scorer()
	if err != nil {
		return nil, err
	}

	a := &app{}

	var (
		readings domain.ReadingRepository
		reviews  domain.WeeklyReviewRepository
	)

	switch cfg.StorageDriver {
	case repository.DriverMemory:
		readings = repository.NewInMemoryReadingRepository()
		reviews = repository.NewInMemoryReviewRepository()

	default:
		dsn := cfg.DatabaseURL
		if cfg.StorageDriver == repository.DriverSQLite {
			dsn = cfg.SQLitePath
		}

		logger.Info("connecting to database", zap.String("driver", cfg.StorageDriver))
		a.db, err = repository.OpenDatabase(ctx, cfg.StorageDriver, dsn)
		if err != nil {
			return nil, err
		}
		readings = repository.NewSQLReadingRepository(a.db)
		reviews = repository.NewSQLReviewRepository(a.db)
	}

	if cfg.RedisAddr != "" {
		a.redis, err = cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, 0)
		if err != nil {
			logger.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			readings = repository.NewCachedReadingRepository(readings, a.redis, logger)
		}
	}

	if cfg.DashboardPasswordHash == "" {
		logger.Warn("dashboard_password_hash not set, owner routes are unauthenticated")
	}

	a.Reviews = services.NewReviewService(readings, reviews, clock)
	a.Worker = workers.NewReviewWorker(a.Reviews, reviewQueueSize, logger)
	a.Checkins = services.NewCheckinService(readings, clock, scorer, a.Worker, logger)

	links := services.NewCheckinLinkService(cfg.CheckinSecret, linkIssuer, cfg.CheckinTTL, clock, nil)
	insights := services.NewInsightsService(readings, clock)

	a.Router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		CheckinHandler:        adapterHTTP.NewCheckinHandler(a.Checkins, links, logger),
		InsightsHandler:       adapterHTTP.NewInsightsHandler(insights, logger),
		ReviewHandler:         adapterHTTP.NewReviewHandler(a.Reviews, logger),
		DashboardPasswordHash: cfg.DashboardPasswordHash,
		RateLimit:             cfg.RateLimit,
		DB:                    a.db,
		Redis:                 a.redis,
		Logger:                logger,
		StartTime:             time.Now(),
	})

	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func openStore(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	switch cfg.StorageDriver {
	case repository.DriverPostgres:
		return repository.OpenDatabase(ctx, cfg.StorageDriver, cfg.DatabaseURL)
	case repository.DriverSQLite:
		return repository.OpenDatabase(ctx, cfg.StorageDriver, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q has no schema to migrate", cfg.StorageDriver)
	}
}
