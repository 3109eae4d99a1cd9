package handler

import (
	"errors"
	"net/http"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/serve/internal/logic"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, svc.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkers.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, checkers.ErrGameOver), errors.Is(err, logic.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, logic.ErrDepthOutOfRange),
		errors.Is(err, logic.ErrUnknownTurn),
		errors.Is(err, logic.ErrBadGameUid),
		errors.Is(err, logic.ErrBadPosition),
		errors.Is(err, checkers.ErrBoardShape):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func abort(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.Abort()
	writeJSON(c, status, types.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.Abort()
	writeJSON(c, http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
}
