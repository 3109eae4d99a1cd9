package logic

import (
	"context"
	"time"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PlayLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPlayLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlayLogic {
	return &PlayLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *PlayLogic) Play(id string, req *types.PlayRequest) (*types.PlayResponse, error) {
	s, err := session(l.svcCtx, id)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	if s.Game.Over() {
		return nil, checkers.ErrGameOver
	}

	if s.AITurn() {
		return nil, ErrNotYourTurn
	}

	mover := s.Game.NowPlayer
	m := checkers.NewMove(req.From, req.To)
	o, err := s.Game.Play(m)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()
	l.Infof("game %s: %v played %v (%v)", s.GameUid, mover, m, o)

	moves, err := playAI(l.ctx, l.svcCtx, s)
	if err != nil {
		return nil, err
	}

	resp := &types.PlayResponse{
		Outcome: o.Kind.String(),
		Game:    *newGameResponse(s, moves),
	}
	if o.Kind == checkers.Capture {
		removed := o.Removed
		resp.Removed = &removed
	}

	return resp, nil
}
