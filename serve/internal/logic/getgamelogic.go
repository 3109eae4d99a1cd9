package logic

import (
	"context"

	"github.com/HuXin0817/checkers/pkg/models/message"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGameLogic {
	return &GetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func session(svcCtx *svc.ServiceContext, id string) (*svc.Session, error) {
	gameUid, ok := message.ParseGameUid(id)
	if !ok {
		return nil, ErrBadGameUid
	}
	return svcCtx.Games.Get(gameUid)
}

func (l *GetGameLogic) GetGame(id string) (*types.GameResponse, error) {
	s, err := session(l.svcCtx, id)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	return newGameResponse(s, nil), nil
}

func (l *GetGameLogic) DeleteGame(id string) error {
	gameUid, ok := message.ParseGameUid(id)
	if !ok {
		return ErrBadGameUid
	}

	if err := l.svcCtx.Games.Delete(gameUid); err != nil {
		return err
	}

	l.Infof("game %s deleted", gameUid)
	return nil
}
