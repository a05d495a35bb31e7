package bootstrap

import (
	"context"
	"log/slog"

	"villanest/internal/infra/cache"
	"villanest/internal/pkg/config"
	"villanest/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewVillaCache,
	),
)

// NewVillaCache connects to Redis when REDIS_ADDR is set and falls back to
// reading straight from Postgres otherwise.
func NewVillaCache(lc fx.Lifecycle, cfg config.Config) (queries.VillaCache, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("Villa cache disabled")
		return cache.NoopVillaCache{}, nil
	}

	client, cleanup, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return cache.NewRedisVillaCache(client, cfg.Redis.TTL), nil
}
