package env

import "os"

var (
	RedisPassWord = os.Getenv("CHECKERS_REDIS_PASSWORD")
	PprofAddr     = os.Getenv("CHECKERS_PPROF_ADDR")
)
