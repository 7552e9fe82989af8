package kv

import (
	"context"
	"fmt"

	"github.com/amirrezaask/cachetrace/env"

	"github.com/redis/go-redis/v9"
)

// Redis is the handle to the external key-value store. All durability,
// expiration timing and eviction belong to the store, not to this module.
type Redis struct {
	*redis.Client
}

type RedisConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DB       int
}

func ConfigFromEnv() RedisConfig {
	return RedisConfig{
		Host:     env.GetEnvDefault("REDIS_HOST", "127.0.0.1"),
		Port:     env.GetEnvIntDefault("REDIS_PORT", 6379),
		Username: env.GetEnvDefault("REDIS_USERNAME", ""),
		Password: env.GetEnvDefault("REDIS_PASSWORD", ""),
		DB:       env.GetEnvIntDefault("REDIS_DB", 0),
	}
}

func NewRedis(ctx context.Context, c RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		DB:       c.DB,
		Username: c.Username,
		Password: c.Password,
	})
	statusCmd := client.Ping(ctx)
	if err := statusCmd.Err(); err != nil {
		return nil, err
	}
	return &Redis{client}, nil
}
