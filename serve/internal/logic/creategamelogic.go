package logic

import (
	"context"
	"math/rand/v2"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateGameLogic) CreateGame(req *types.CreateGameRequest) (*types.GameResponse, error) {
	ai, err := parseTurn(req.AI, checkers.Player2)
	if err != nil {
		return nil, err
	}

	var first checkers.Turn
	if req.First == "random" {
		first = checkers.Turns[rand.IntN(len(checkers.Turns))]
	} else if first, err = parseTurn(req.First, checkers.Player1); err != nil {
		return nil, err
	}

	depth, err := resolveDepth(l.svcCtx, req.Depth)
	if err != nil {
		return nil, err
	}

	s := l.svcCtx.Games.New(first, ai, depth)
	s.Lock()
	defer s.Unlock()

	l.Infof("game %s created: ai %v, first %v, depth %d", s.GameUid, ai, first, depth)

	moves, err := playAI(l.ctx, l.svcCtx, s)
	if err != nil {
		return nil, err
	}

	return newGameResponse(s, moves), nil
}
