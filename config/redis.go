package config

import (
	"VoxRace/services/redis"
	"log"
)

// Connect_redis connects to REDIS_URL
func Connect_redis(cfg Config) (*redis.RedisClient, error) {
	redisClient, err := redis.InitRedis(cfg.RedisURL, 0)
	if err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Println("Redis connection established")
	return redisClient, nil
}
