package handler

import (
	"net/http"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/serve/internal/logic"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func CreateGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateGameRequest
		if c.Request.ContentLength != 0 {
			if err := bindJSON(c, &req); err != nil {
				badRequest(c, err)
				return
			}
		}

		resp, err := logic.NewCreateGameLogic(c.Request.Context(), svcCtx).CreateGame(&req)
		if err != nil {
			abort(c, err)
			return
		}
		writeJSON(c, http.StatusCreated, resp)
	}
}

func GetGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).GetGame(c.Param("id"))
		if err != nil {
			abort(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}

func DeleteGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).DeleteGame(c.Param("id")); err != nil {
			abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func DestinationsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.DestinationsRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			badRequest(c, err)
			return
		}

		from := checkers.NewPosition(*req.X, *req.Y)
		resp, err := logic.NewDestinationsLogic(c.Request.Context(), svcCtx).Destinations(c.Param("id"), from)
		if err != nil {
			abort(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}

func PlayHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlayRequest
		if err := bindJSON(c, &req); err != nil {
			badRequest(c, err)
			return
		}

		resp, err := logic.NewPlayLogic(c.Request.Context(), svcCtx).Play(c.Param("id"), &req)
		if err != nil {
			abort(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}
