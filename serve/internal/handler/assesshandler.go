package handler

import (
	"net/http"

	"github.com/HuXin0817/checkers/serve/internal/logic"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func AssessHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AssessRequest
		if err := bindJSON(c, &req); err != nil {
			badRequest(c, err)
			return
		}

		resp, err := logic.NewAssessLogic(c.Request.Context(), svcCtx).Assess(&req)
		if err != nil {
			abort(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}

func RecentHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewAssessLogic(c.Request.Context(), svcCtx).Recent()
		if err != nil {
			abort(c, err)
			return
		}
		writeJSON(c, http.StatusOK, resp)
	}
}
