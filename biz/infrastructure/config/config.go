package config

import (
	"os"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64
}

type Mongo struct {
	URL string
	DB  string
}

type MySQL struct {
	DSN string
}

// AI configures the OpenAI-compatible grading backend.
type AI struct {
	URL         string
	Key         string
	Model       string
	TimeoutSec  int64 `json:",default=120"`
	Temperature float64
}

type Upload struct {
	MaxBytes int64 `json:",default=10485760"`
}

type Config struct {
	service.ServiceConf
	ListenOn    string
	MetricsOn   string `json:",optional"`
	Auth        Auth
	Mongo       Mongo
	MySQL       MySQL
	Cache       cache.CacheConf
	Redis       *redis.RedisConf
	AI          AI
	Upload      Upload
	AdminSecret string `json:",optional"` // initial admin password, random when empty
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	log.Info("NewConfig load config from path: %s", path)
	if err := conf.Load(path, c); err != nil {
		return nil, err
	}
	if err := c.SetUp(); err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
