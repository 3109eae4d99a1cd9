package assess

import "github.com/HuXin0817/checkers/pkg/models/checkers"

// BestMove picks the next move for the side to move in g, keeping to the
// chained piece while a capture chain is open. depth is at least one ply.
func BestMove(g *checkers.Game, depth int) (score int, move checkers.Move, ok bool) {
	if depth < 1 {
		depth = 1
	}

	mm := NewMinimax(g.NowPlayer)
	if g.Context.Chained {
		return mm.Choose(g.Board, g.LegalMoves(), depth)
	}
	return mm.Search(g.Board, depth)
}
