// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"spordate/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the Redis client used for checkout-session snapshots. It
// stays nil when REDIS_ADDR is not configured; the cache is presentation
// state only, so the service runs fine without it.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client if Redis is configured.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("Redis not configured, session cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis, session cache disabled", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
