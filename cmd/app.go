package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"personal-site/client"
	"personal-site/finance"
	"personal-site/repository"
	"personal-site/service"
)

// app holds the services shared by serve and the calc commands.
type app struct {
	projections *service.ProjectionService
	goals       *service.GoalService
	plans       *service.GoalPlanService
	history     *service.HistoryService

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	a := &app{}

	history, err := a.openHistory()
	if err != nil {
		return nil, err
	}
	cache := a.openCache(ctx)

	a.projections = service.NewProjectionService(history, cache,
		service.WithCacheTTL(cfg.Cache.TTL.Duration),
		service.WithLocale(finance.ParseLocale(cfg.Display.Locale)),
	)
	a.goals = service.NewGoalService(history)
	a.plans = service.NewGoalPlanService(a.goals)
	a.history = service.NewHistoryService(history)
	return a, nil
}

func (a *app) openHistory() (repository.CalculationRepository, error) {
	if cfg.History.Path == "" {
		return repository.NewCalculationRepositoryMemory(), nil
	}
	repo, err := repository.OpenCalculationRepositorySQLite(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, repo.Close)
	return repo, nil
}

// openCache uses Redis when configured and reachable, memory otherwise.
func (a *app) openCache(ctx context.Context) repository.CacheRepository {
	if cfg.Cache.RedisAddr == "" {
		return a.memoryCache()
	}

	redis := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redis.Ping(pingCtx); err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "addr", cfg.Cache.RedisAddr, "err", err)
		_ = redis.Close()
		return a.memoryCache()
	}
	a.closers = append(a.closers, redis.Close)
	return redis
}

func (a *app) memoryCache() repository.CacheRepository {
	cache := repository.NewMemoryCache()
	a.closers = append(a.closers, cache.Close)
	return cache
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func newSiteService() (*service.SiteService, error) {
	cc := client.DefaultConfig()
	cc.BaseURL = cfg.Site.BaseURL
	if cfg.Site.Timeout.Duration > 0 {
		cc.Timeout = cfg.Site.Timeout.Duration
	}
	api, err := client.New(cc)
	if err != nil {
		return nil, err
	}
	return service.NewSiteService(api), nil
}
