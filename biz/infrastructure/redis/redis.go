package redis

import (
	"paper-grade/biz/infrastructure/config"
	"sync"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var instance *redis.Redis
var once sync.Once

// GetRedis returns the shared Redis client.
func GetRedis(config *config.Config) *redis.Redis {
	once.Do(func() {
		instance = redis.MustNewRedis(*config.Redis)
	})
	return instance
}
