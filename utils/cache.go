// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"cityconnect/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient backs the chat session store when SESSION_STORE=redis.
var SessionCacheClient *redis.Client

// InitSessionCache connects the Redis client used for chat sessions.
func InitSessionCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (sessions): %w", err)
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the session Redis client, or nil when it was never initialized.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
