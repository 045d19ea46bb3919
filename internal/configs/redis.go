package config

import (
	"log"

	"github.com/redis/rueidis"
)

func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("redis client init failed: %v", err)
	}

	return redisClient
}
