// Package redisstore provides Redis-backed challenge and user stores for
// deployments that want OTP state to survive a process restart or be shared
// behind a load balancer. Challenges carry a native Redis TTL, so expired
// entries vanish without a reaper.
package redisstore

import (
	"context"
	"fmt"

	"github.com/go-otp-gateway/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
