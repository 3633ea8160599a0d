package db

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis sets up the shared Redis client used for ticker/banner caching.
// A failed ping is logged but not fatal: the cache degrades to Mongo reads.
func InitRedis(addr, password string, database int) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})
	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %s", err)
	} else {
		log.Println("Successfully connected to Redis")
	}
}
