package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	ListenOn string          `json:",default=0.0.0.0:8000"`
	Redis    redis.RedisConf `json:",optional"`
	Search   SearchConf
	Cache    CacheConf
}

type SearchConf struct {
	Depth    int `json:",default=4"`
	MaxDepth int `json:",default=6"`
}

type CacheConf struct {
	Expire       int           `json:",default=600"`
	RecentLength int           `json:",default=100"`
	PushInterval time.Duration `json:",default=1s"`
}

func (c Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}
