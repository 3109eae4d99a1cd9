package logic

import (
	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
)

// newGameResponse snapshots s. The caller holds the session lock.
func newGameResponse(s *svc.Session, aiMoves []checkers.Move) *types.GameResponse {
	g := s.Game
	resp := &types.GameResponse{
		GameUid:    s.GameUid,
		Board:      g.Board.Cells(),
		Turn:       g.NowPlayer.String(),
		AI:         s.AI.String(),
		Depth:      s.Depth,
		Context:    g.Context,
		Plies:      g.Plies,
		Scoreboard: make(map[string]checkers.Score, len(checkers.Turns)),
		LegalMoves: g.LegalMoves(),
		AIMoves:    aiMoves,
	}

	for t, score := range g.Scoreboard() {
		resp.Scoreboard[t.String()] = score
	}

	if winner, ok := g.Winner(); ok {
		resp.Over = true
		resp.Winner = winner.String()
	}

	return resp
}

func parseTurn(s string, fallback checkers.Turn) (checkers.Turn, error) {
	if s == "" {
		return fallback, nil
	}

	t, ok := checkers.ParseTurn(s)
	if !ok {
		return 0, ErrUnknownTurn
	}
	return t, nil
}
