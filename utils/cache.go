package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/martinbaumann-sky/BaumannCo/config"
)

// CacheClient is the optional Redis client used to cache computed
// availability responses for a short window.
var CacheClient *redis.Client

// InitCache connects the availability cache. The cache is opt-in: when no
// Redis address is configured, or the server is unreachable, the service
// simply computes every response fresh.
func InitCache() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Warnf("Availability cache disabled, Redis unreachable: %v", err)
		return nil
	}

	CacheClient = client
	return client
}
