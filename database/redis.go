package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// ConnectRedis returns a client for addr, or nil when addr is empty or the
// server does not answer a ping.
func ConnectRedis(ctx context.Context, addr, password string, db int) *redis.Client {
	if addr == "" {
		log.Printf("database: REDIS_ADDR not set, running without cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("database: redis not available (%v), running without cache", err)
		client.Close()
		return nil
	}

	log.Printf("database: redis connected (%s)", addr)
	return client
}
