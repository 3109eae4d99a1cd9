package assess

import "github.com/HuXin0817/checkers/pkg/models/checkers"

// NextMoves lists every legal move turn has on b, in generation order.
func NextMoves(b checkers.Board, turn checkers.Turn) (moves []Move) {
	for _, m := range b.LegalMoves(turn, checkers.NewTurnContext()) {
		moves = append(moves, Move{
			Board: b,
			Move:  m,
		})
	}
	return
}
