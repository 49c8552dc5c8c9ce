package database

import (
	"context"
	"log"

	"fieldscore/config"

	"github.com/redis/go-redis/v9"
)

var REDIS *redis.Client

// InitRedis connects the session cache. The API still works without redis;
// user lookups just fall through to postgres on every request.
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := REDIS.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unavailable, session caching disabled: ", err)
	}
}
