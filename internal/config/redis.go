package config

import (
	"context"
	"time"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis builds the Redis client used by the read cache. A failed ping
// is logged but not fatal: the cache degrades to the database.
func ConnectRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisURI,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", cfg.RedisURI),
			zap.Error(err))
		return client
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", cfg.RedisURI))
	return client
}
