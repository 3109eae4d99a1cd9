package handler

import (
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/gin-gonic/gin"
)

func RegisterHandlers(r gin.IRouter, svcCtx *svc.ServiceContext) {
	games := r.Group("/games")
	games.POST("", CreateGameHandler(svcCtx))
	games.GET("/:id", GetGameHandler(svcCtx))
	games.DELETE("/:id", DeleteGameHandler(svcCtx))
	games.GET("/:id/destinations", DestinationsHandler(svcCtx))
	games.POST("/:id/moves", PlayHandler(svcCtx))

	r.POST("/assess", AssessHandler(svcCtx))
	r.GET("/assess/recent", RecentHandler(svcCtx))
}

func NewRouter(svcCtx *svc.ServiceContext) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	RegisterHandlers(r, svcCtx)
	return r
}
