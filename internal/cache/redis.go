package cache

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// InitRedis builds a client from REDIS_ADDR / REDIS_PWD / REDIS_DB. Returns
// nil when no address is configured; callers treat that as "leaderboard
// unavailable" rather than an error.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Redis not configured, leaderboard will be unavailable")
		return nil
	}

	dbIndex, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PWD"),
		DB:       dbIndex,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %v", err)
	}
	return client
}
