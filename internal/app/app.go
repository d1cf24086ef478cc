// Package app assembles repositories, services and the streak worker for a
// given configuration. Both binaries start from here.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/cache"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/demo"
	adapterHTTP "github.com/comitanigiacomo/consistency-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/config"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/workers"
)

type App struct {
	Auth        *services.AuthService
	Tokens      *services.TokenService
	Goals       *services.GoalService
	Stats       *services.StatsService
	Progress    *services.ProgressService
	Compete     *services.CompeteService
	Coach       *services.CoachService
	Preferences *services.PreferencesService

	// Session is nil on the postgres driver, which has no local profile.
	Session domain.SessionRepository

	Worker     *workers.StreakWorker
	Thresholds *config.ThresholdStore

	cfg     *config.AppConfig
	started time.Time
	redis   *redis.Client
	checks  map[string]adapterHTTP.HealthCheck
	closers []func() error
}

type repositories struct {
	users    domain.UserRepository
	goals    domain.GoalRepository
	progress domain.ProgressRepository
	prefs    domain.PreferencesRepository
	session  domain.SessionRepository
}

// New opens the configured backends. Close releases them.
func New(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	a := &App{
		cfg:     cfg,
		started: time.Now(),
		checks:  make(map[string]adapterHTTP.HealthCheck),
	}

	repos, err := a.openRepositories(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	if cfg.RedisEnabled {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without goal cache and rate limiter")
		} else {
			a.redis = rdb
			a.closers = append(a.closers, rdb.Close)
			a.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			repos.goals = repository.NewCachedGoalRepository(repos.goals, rdb)
		}
	}

	thresholds, err := config.LoadThresholds(cfg.InsightsConfig)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Thresholds = thresholds

	catalog, err := demo.NewCatalog()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET not set, tokens will not survive a restart")
	}

	a.Session = repos.session
	a.Progress = services.NewProgressService(repos.users, repos.progress, catalog)
	a.Worker = workers.NewStreakWorker(repos.goals, a.Progress)
	a.Goals = services.NewGoalService(repos.goals, a.Worker)
	a.Stats = services.NewStatsService(a.Goals, a.Thresholds)
	a.Auth = services.NewAuthService(repos.users, repos.progress)
	a.Tokens = services.NewTokenService(secret, cfg.JWTIssuer, cfg.JWTTTL, repos.users)
	a.Compete = services.NewCompeteService(catalog)
	a.Coach = services.NewCoachService(repos.users, catalog)
	a.Preferences = services.NewPreferencesService(repos.prefs)

	return a, nil
}

func (a *App) openRepositories(ctx context.Context) (*repositories, error) {
	if a.cfg.StorageDriver == config.DriverPostgres {
		db, err := repository.OpenPostgres(ctx, a.cfg.Postgres)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		a.checks["database"] = pingDB(db)

		return &repositories{
			users:    repository.NewPostgresUserRepository(db),
			goals:    repository.NewPostgresGoalRepository(db),
			progress: repository.NewPostgresProgressRepository(db),
			prefs:    repository.NewPostgresPreferencesRepository(db),
		}, nil
	}

	store, err := storage.Open(ctx, a.cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("app: open %s store: %w", a.cfg.StorageDriver, err)
	}
	a.closers = append(a.closers, store.Close)
	a.checks["storage"] = probeStore(store)

	return &repositories{
		users:    repository.NewKVUserRepository(store),
		goals:    repository.NewKVGoalRepository(store),
		progress: repository.NewKVProgressRepository(store),
		prefs:    repository.NewKVPreferencesRepository(store),
		session:  repository.NewKVSessionRepository(store),
	}, nil
}

// Router builds the HTTP API over the assembled services.
func (a *App) Router() *gin.Engine {
	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:        adapterHTTP.NewAuthHandler(a.Auth, a.Tokens),
		GoalHandler:        adapterHTTP.NewGoalHandler(a.Goals),
		StatsHandler:       adapterHTTP.NewStatsHandler(a.Stats),
		ProgressHandler:    adapterHTTP.NewProgressHandler(a.Progress),
		CommunityHandler:   adapterHTTP.NewCommunityHandler(a.Compete, a.Coach),
		PreferencesHandler: adapterHTTP.NewPreferencesHandler(a.Preferences),
		TokenService:       a.Tokens,
		Redis:              a.redis,
		RateLimit:          a.cfg.RateLimit,
		RateWindow:         a.cfg.RateWindow,
		Checks:             a.checks,
		StartTime:          a.started,
	})
}

// RunBackground drives the streak worker and the thresholds watcher until ctx
// is cancelled.
func (a *App) RunBackground(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Worker.Run(ctx) })
	if a.cfg.InsightsConfig != "" {
		g.Go(func() error { return a.Thresholds.Watch(ctx) })
	}
	return g.Wait()
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func pingDB(db *sqlx.DB) adapterHTTP.HealthCheck {
	return func(ctx context.Context) error { return db.PingContext(ctx) }
}

// probeStore treats a missing key as healthy; only backend errors count.
func probeStore(store storage.Store) adapterHTTP.HealthCheck {
	return func(ctx context.Context) error {
		_, err := store.Get(ctx, "users")
		if err == nil || errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
}
