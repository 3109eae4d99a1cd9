package pprof

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/HuXin0817/checkers/pkg/env"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

const maxAttempts = 5

func addr() string {
	if env.PprofAddr != "" {
		return env.PprofAddr
	}
	return fmt.Sprintf("localhost:%d", 1024+rand.New(rand.NewSource(time.Now().UnixNano())).Intn(0xffff-1024))
}

func run() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)

	for range maxAttempts {
		a := addr()
		logx.Infof("pprof listening on %s", a)
		if err := router.Run(a); err != nil {
			logx.Errorf("pprof on %s: %v", a, err)
			time.Sleep(time.Second)
		}
	}
}

func init() {
	go run()
}
