package assess

import "github.com/HuXin0817/checkers/pkg/models/checkers"

type Move struct {
	checkers.Board
	checkers.Move
}

// Next is the board after the move, played on a copy.
func (m Move) Next(turn checkers.Turn) checkers.Board {
	next, _ := m.Board.Play(turn, m.Move, checkers.NewTurnContext())
	return next
}
