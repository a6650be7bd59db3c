// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"veranda/config"

	"github.com/go-redis/redis/v8"
)

// QuoteCacheClient is the dedicated client for quote storage. Quotes rely on
// redis key expiry for their 15-minute lifetime, so they get their own DB.
var QuoteCacheClient *redis.Client

// InitQuoteCache initializes the Redis client used for quote storage.
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QuoteCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Quotes): %v", err)
	}
}

// GetQuoteCacheClient returns the Redis client for quote storage.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}
