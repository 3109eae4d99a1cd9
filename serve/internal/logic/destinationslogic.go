package logic

import (
	"context"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type DestinationsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDestinationsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DestinationsLogic {
	return &DestinationsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *DestinationsLogic) Destinations(id string, from checkers.Position) (*types.DestinationsResponse, error) {
	if !from.Valid() {
		return nil, ErrBadPosition
	}

	s, err := session(l.svcCtx, id)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	destinations := s.Game.Destinations(from)
	if destinations == nil {
		destinations = []checkers.Position{}
	}

	return &types.DestinationsResponse{
		From:         from,
		Destinations: destinations,
	}, nil
}
