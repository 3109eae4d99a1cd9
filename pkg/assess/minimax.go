package assess

import "github.com/HuXin0817/checkers/pkg/models/checkers"

// Minimax searches a fixed depth for the side it was created for.
// Each recursion level flips the side to move, multi-jump chains included.
type Minimax struct {
	Turn  checkers.Turn
	nodes int64
}

func NewMinimax(turn checkers.Turn) *Minimax {
	return &Minimax{Turn: turn}
}

// Nodes is the number of boards visited by the last Search.
func (mm *Minimax) Nodes() int64 {
	return mm.nodes
}

// Search runs Minimax from the root, resetting the node counter.
func (mm *Minimax) Search(b checkers.Board, depth int) (score int, move checkers.Move, ok bool) {
	mm.nodes = 0
	return mm.Minimax(b, depth, true)
}

// Minimax returns the best score reachable from b and the move leading to it.
// ok is false when depth is exhausted or the side to move has no legal move;
// score is then the static evaluation of b.
func (mm *Minimax) Minimax(b checkers.Board, depth int, maximizing bool) (score int, move checkers.Move, ok bool) {
	mm.nodes++

	turn := mm.Turn
	if !maximizing {
		turn = mm.Turn.Opponent()
	}

	if depth <= 0 {
		return Assess(b, mm.Turn), move, false
	}

	return mm.choose(b, turn, NextMoves(b, turn), depth, maximizing)
}

// Choose picks among root moves given by the caller, such as the captures that
// must continue a chain. The side to move maximizes.
func (mm *Minimax) Choose(b checkers.Board, moves []checkers.Move, depth int) (score int, move checkers.Move, ok bool) {
	mm.nodes = 1
	if depth <= 0 {
		return Assess(b, mm.Turn), move, false
	}

	nextMoves := make([]Move, 0, len(moves))
	for _, m := range moves {
		nextMoves = append(nextMoves, Move{Board: b, Move: m})
	}
	return mm.choose(b, mm.Turn, nextMoves, depth, true)
}

func (mm *Minimax) choose(b checkers.Board, turn checkers.Turn, nextMoves []Move, depth int, maximizing bool) (score int, move checkers.Move, ok bool) {
	if len(nextMoves) == 0 {
		return Assess(b, mm.Turn), move, false
	}

	if maximizing {
		score = -INF
	} else {
		score = INF
	}

	for _, m := range nextMoves {
		eval, _, _ := mm.Minimax(m.Next(turn), depth-1, !maximizing)
		if maximizing && eval > score || !maximizing && eval < score {
			score = eval
			move = m.Move
			ok = true
		}
	}

	return
}
