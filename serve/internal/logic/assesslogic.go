package logic

import (
	"context"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/message"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type AssessLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAssessLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AssessLogic {
	return &AssessLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *AssessLogic) Assess(req *types.AssessRequest) (*types.AssessResponse, error) {
	b, err := checkers.ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}

	turn, err := parseTurn(req.Turn, 0)
	if err != nil {
		return nil, err
	}
	if !turn.Valid() {
		return nil, ErrUnknownTurn
	}

	depth, err := resolveDepth(l.svcCtx, req.Depth)
	if err != nil {
		return nil, err
	}

	v, cached := searchBoard(l.ctx, l.svcCtx, "", b, turn, depth)
	return &types.AssessResponse{
		Move:   v.Move,
		Score:  v.Score,
		Ok:     v.Ok,
		Nodes:  v.Nodes,
		Cached: cached,
	}, nil
}

func (l *AssessLogic) Recent() (*types.RecentResponse, error) {
	records, err := l.svcCtx.RecentRecords(l.ctx)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []message.AssessRecord{}
	}
	return &types.RecentResponse{Records: records}, nil
}
