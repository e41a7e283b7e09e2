package database

import (
	"context"
	"fmt"
	"time"

	appconfig "liquidation_backoffice/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client and pings the server once.
func ConnectRedis(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}
