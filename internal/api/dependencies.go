package api

import (
	"context"

	"office-experiment/dutyboard/internal/common"
	"office-experiment/dutyboard/internal/config"
	"office-experiment/dutyboard/internal/db"
	"office-experiment/dutyboard/internal/db/repositories"
	"office-experiment/dutyboard/internal/logging"
	"office-experiment/dutyboard/internal/metrics"
	"office-experiment/dutyboard/internal/services"
)

type Repositories struct {
	Members     *repositories.MemberRepository
	Duties      *repositories.DutyRepository
	DutyQueries *repositories.DutyQueryRepository
}

type Services struct {
	Cache  common.CacheInterface
	Duty   *services.DutyService
	Member *services.MemberService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories, cache and services together.
// Expects db.InitPostgres and db.InitPostgresORM to have run.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	cacheSvc := initCache(context.Background())

	repos := &Repositories{
		Members:     repositories.NewMemberRepository(db.PgDB),
		Duties:      repositories.NewDutyRepository(db.PgDB),
		DutyQueries: repositories.NewDutyQueryRepository(db.DB),
	}

	svcs := &Services{
		Cache:  cacheSvc,
		Duty:   services.NewDutyService(repos.DutyQueries, repos.Duties, cacheSvc, metricsReg),
		Member: services.NewMemberService(repos.Members, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}

// initCache prefers Redis and degrades to the in-process cache when credentials
// cannot be resolved or Redis is unreachable. The service stays functional
// either way; only recent-duty latency differs.
func initCache(ctx context.Context) common.CacheInterface {
	url, token, err := config.RedisCredentials(ctx)
	if err != nil {
		logging.Warn("Could not resolve Redis credentials, using in-memory cache", "error", err.Error())
		return common.NewCacheService(3600, 600)
	}

	redisSvc, err := common.NewRedisCacheService(url, token)
	if err != nil {
		logging.Warn("Redis unreachable, using in-memory cache", "error", err.Error())
		return common.NewCacheService(3600, 600)
	}

	logging.Info("Connected to Redis cache")
	return redisSvc
}
