package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	_ "github.com/HuXin0817/checkers/pkg/pprof"
	"github.com/HuXin0817/checkers/serve/internal/config"
	"github.com/HuXin0817/checkers/serve/internal/handler"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/service"
)

const shutdownTimeout = 5 * time.Second

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address, overrides ListenOn")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	c.MustSetUp()
	if *serveAddr != "" {
		c.ListenOn = *serveAddr
	}

	if c.Mode != service.DevMode && c.Mode != service.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := svc.NewServiceContext(c)
	srv := &http.Server{
		Addr:    c.ListenOn,
		Handler: handler.NewRouter(ctx),
	}

	waitForShutdown := proc.AddShutdownListener(shutdown(srv, ctx))

	fmt.Printf("Starting http server at %s...\n", c.ListenOn)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		ctx.Stop()
		logx.Must(err)
	}
	waitForShutdown()
}

// shutdown drains srv, then flushes the analysis records still buffered.
func shutdown(srv *http.Server, svcCtx *svc.ServiceContext) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logx.Errorf("shutdown: %v", err)
		}
		svcCtx.Stop()
	}
}
