package cache

import (
	"context"
	"log/slog"
	"time"

	"villanest/internal/pkg/config"
	"villanest/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect dials Redis and verifies it answers. The returned cleanup closes the client.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	slog.Info("redis connected", "addr", cfg.Addr, "db", cfg.DB)
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}
