package storage

import (
	"log"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

func InitializeRedis(cfg config.RedisConfig) {
	addr := cfg.Address
	if addr == "" {
		addr = "localhost:6379"
		log.Println("redis address not set, using localhost:6379")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
