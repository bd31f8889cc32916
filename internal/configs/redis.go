package config

import (
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		zap.L().Fatal("failed to create redis client", zap.Error(err))
	}

	return redisClient
}
