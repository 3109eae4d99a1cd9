package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/HuXin0817/checkers/pkg/assess"
	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/message"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

// maxAIMoves bounds one AI turn. A capture chain on this board never gets close.
const maxAIMoves = 32

func resolveDepth(svcCtx *svc.ServiceContext, depth int) (int, error) {
	if depth == 0 {
		return svcCtx.Config.Search.Depth, nil
	}

	if depth < 1 || depth > svcCtx.Config.Search.MaxDepth {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrDepthOutOfRange, depth, svcCtx.Config.Search.MaxDepth)
	}
	return depth, nil
}

// searchBoard runs minimax for turn on b, reading and feeding the analysis cache.
func searchBoard(ctx context.Context, svcCtx *svc.ServiceContext, id message.GameUid, b checkers.Board, turn checkers.Turn, depth int) (value message.AssessMessageValue, cached bool) {
	logger := logx.WithContext(ctx)
	key := message.NewAssessMessageKey(b, turn, depth)

	if svcCtx.RedisClient != nil {
		s, err := svcCtx.RedisClient.GetCtx(ctx, key.String())
		if err != nil {
			logger.Errorf("read analysis cache: %v", err)
		} else if s != "" {
			if value, err = message.NewAssessMessageValue(s); err == nil {
				return value, true
			}
			logger.Errorf("decode cached analysis: %v", err)
		}
	}

	start := time.Now()
	mm := assess.NewMinimax(turn)
	score, move, ok := mm.Search(b, depth)
	value = message.AssessMessageValue{
		Move:  move,
		Score: score,
		Ok:    ok,
		Nodes: mm.Nodes(),
	}
	logger.Infof("searched %v at depth %d: %v score %d, %d nodes in %v", turn, depth, move, score, value.Nodes, time.Since(start))

	svcCtx.AssessPusher.AddMessages(message.AssessRecord{
		TimeStamp:          message.Now(),
		GameUid:            id,
		AssessMessageKey:   key,
		AssessMessageValue: value,
	})

	return value, false
}

// playAI lets the AI move while it holds the turn, chain continuations included.
// The caller holds the session lock.
func playAI(ctx context.Context, svcCtx *svc.ServiceContext, s *svc.Session) (moves []checkers.Move, err error) {
	logger := logx.WithContext(ctx)

	for range maxAIMoves {
		if !s.AITurn() {
			return moves, nil
		}

		var (
			move checkers.Move
			ok   bool
		)
		if s.Game.Context.Chained {
			_, move, ok = assess.BestMove(s.Game, s.Depth)
		} else {
			var v message.AssessMessageValue
			v, _ = searchBoard(ctx, svcCtx, s.GameUid, s.Game.Board, s.Game.NowPlayer, s.Depth)
			move, ok = v.Move, v.Ok
		}

		if !ok {
			return moves, nil
		}

		if _, err = s.Game.Play(move); err != nil {
			return moves, err
		}
		moves = append(moves, move)
		s.UpdatedAt = time.Now()
	}

	logger.Errorf("game %s: ai still to move after %d moves", s.GameUid, maxAIMoves)
	return moves, nil
}
